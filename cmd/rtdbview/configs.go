package main

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/signadot/rtdbview/encode"
	"github.com/signadot/rtdbview/firebase"
	"github.com/signadot/rtdbview/parse"

	"github.com/scott-cotton/cli"

	"github.com/mattn/go-isatty"
)

type MainConfig struct {
	Config  string `cli:"name=config desc='settings file'"`
	Color   bool   `cli:"name=color desc='encode with color'"`
	WireOut bool   `cli:"name=wire desc='output in compact format'"`
	Strict  bool   `cli:"name=strict desc='reject malformed JSON instead of guessing'"`
	Sort    bool   `cli:"name=sort desc='sort object keys'"`
	Legacy  bool   `cli:"name=legacy desc='drop unicode escapes like older viewers did'"`
	Indent  int    `cli:"name=indent desc='spaces per nesting level'"`
	Timeout time.Duration

	Out      string
	CloseOut func() error

	Main *cli.Command
}

func (cfg *MainConfig) parseOpts() []parse.ParseOption {
	return []parse.ParseOption{
		parse.ParseStrict(cfg.Strict),
		parse.LegacyEscapes(cfg.Legacy),
	}
}

func (cfg *MainConfig) encOpts(w io.Writer) []encode.EncodeOption {
	res := []encode.EncodeOption{
		encode.EncodeWire(cfg.WireOut),
		encode.EncodeSortKeys(cfg.Sort),
	}
	if cfg.Indent > 0 {
		res = append(res, encode.Indent(cfg.Indent))
	}
	if cfg.useColor(w) {
		res = append(res, encode.EncodeColors(encode.NewColors()))
	}
	return res
}

// useColor honors an explicit -color, otherwise colors terminals.
func (cfg *MainConfig) useColor(w io.Writer) bool {
	if cfg.Color {
		return true
	}
	if cfg.Main != nil {
		for _, opt := range cfg.Main.Opts {
			if opt.Name == "color" && opt.Value != nil {
				return false
			}
		}
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}

func (cfg *MainConfig) timeoutOpt(_ *cli.Context, a string) (any, error) {
	d, err := time.ParseDuration(a)
	if err != nil {
		return nil, err
	}
	cfg.Timeout = d
	return d, nil
}

func (cfg *MainConfig) clientOpts() []firebase.Option {
	if cfg.Timeout <= 0 {
		return nil
	}
	return []firebase.Option{firebase.WithHTTPClient(&http.Client{Timeout: cfg.Timeout})}
}

type ViewConfig struct {
	*MainConfig
	Search string `cli:"name=s desc='only show lines containing this text'"`
	Tokens bool   `cli:"name=tokens desc='print the token stream instead'"`

	View *cli.Command
}

type FilterConfig struct {
	*MainConfig

	Filter *cli.Command
}

type SettingsConfig struct {
	*MainConfig
	Save bool `cli:"name=save desc='write the effective settings to the settings file'"`

	Settings *cli.Command
}

type SignInConfig struct {
	*MainConfig

	SignIn *cli.Command
}

type FetchConfig struct {
	*MainConfig
	Search string `cli:"name=s desc='only show lines containing this text'"`
	Save   bool   `cli:"name=save desc='also save the response under its default file name'"`
	SaveAs string `cli:"name=saveAs desc='also save the response to this file'"`
	Raw    bool   `cli:"name=raw desc='print the response as received'"`

	Fetch *cli.Command
}

type ZonesConfig struct {
	*MainConfig
	Where string `cli:"name=where desc='only show zones matching an expression over name, visits and ratio'"`
	Fetch bool   `cli:"name=fetch desc='read zones from the database instead of a file'"`
	Width int    `cli:"name=width desc='bar width'"`

	Zones *cli.Command
}

type VisitConfig struct {
	*MainConfig

	Visit *cli.Command
}

type SessionConfig struct {
	*MainConfig
	User  string `cli:"name=user desc='user id to track'"`
	Every time.Duration

	Session *cli.Command
}

func (cfg *SessionConfig) mkEvery() func(cc *cli.Context, a string) (any, error) {
	return func(_ *cli.Context, a string) (any, error) {
		d, err := time.ParseDuration(a)
		if err != nil {
			return nil, err
		}
		cfg.Every = d
		return d, nil
	}
}

type DiffConfig struct {
	*MainConfig
	Merge bool `cli:"name=merge desc='print a merge patch instead of a text diff'"`

	Diff *cli.Command
}

type PatchConfig struct {
	*MainConfig

	Patch *cli.Command
}
