package debug

import (
	"os"
	"strconv"
)

type debug struct {
	HTTP  bool
	Parse bool
	Track bool
}

var d *debug

func init() {
	d = &debug{}
	d.HTTP = boolEnv("RTDBVIEW_DEBUG_HTTP")
	d.Parse = boolEnv("RTDBVIEW_DEBUG_PARSE")
	d.Track = boolEnv("RTDBVIEW_DEBUG_TRACK")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func HTTP() bool {
	return d.HTTP
}
func Parse() bool {
	return d.Parse
}
func Track() bool {
	return d.Track
}
