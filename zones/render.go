package zones

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

const (
	DefaultWidth = 40
	NoZones      = "No zone data found."
)

// Render writes one bar per zone:
//
//	arena (3 visits)  ##############.......... 75.0%
//
// With colorize the bar fades from red to green as the ratio grows.
func Render(w io.Writer, s *Summary, width int, colorize bool) error {
	if len(s.Zones) == 0 {
		_, err := fmt.Fprintln(w, NoZones)
		return err
	}
	if width <= 0 {
		width = DefaultWidth
	}
	labels := make([]string, len(s.Zones))
	pad := 0
	for i, z := range s.Zones {
		labels[i] = fmt.Sprintf("%s (%d visits)", z.Name, z.Visits)
		pad = max(pad, len(labels[i]))
	}
	if _, err := fmt.Fprintln(w, "Zone Analytics"); err != nil {
		return err
	}
	for i, z := range s.Zones {
		n := min(width, max(0, int(z.Ratio*float64(width)+0.5)))
		bar := strings.Repeat("#", n)
		if colorize {
			bar = lerp(z.Ratio).Sprint(bar)
		}
		bar += strings.Repeat(".", width-n)
		_, err := fmt.Fprintf(w, "%-*s %s %5.1f%%\n", pad, labels[i], bar, z.Ratio*100)
		if err != nil {
			return err
		}
	}
	return nil
}

func lerp(r float64) *color.Color {
	r = min(1, max(0, r))
	red := int(255 * (1 - r))
	green := int(255 * r)
	c := color.RGB(red, green, 0)
	c.EnableColor()
	return c
}
