package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/signadot/rtdbview/filter"
	"github.com/signadot/rtdbview/snapshot"

	"github.com/scott-cotton/cli"
)

var commonPaths = []string{"players", "zones", "leaderboard", "stats"}

// suggest lists the common paths path is a case insensitive prefix of,
// or nothing when the first of them is path itself.
func suggest(path string) []string {
	if path == "" {
		return nil
	}
	var res []string
	for _, p := range commonPaths {
		if len(p) >= len(path) && strings.EqualFold(p[:len(path)], path) {
			res = append(res, p)
		}
	}
	if len(res) == 0 || res[0] == path {
		return nil
	}
	return res
}

func fetch(cfg *FetchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Fetch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) > 1 {
		return fmt.Errorf("%w: fetch takes at most one path, got %v", cli.ErrUsage, args)
	}
	db, s, err := cfg.signedInDB()
	if err != nil {
		return err
	}
	path := s.DefaultPath
	if len(args) == 1 {
		path = args[0]
	}
	if sug := suggest(path); len(sug) > 0 {
		fmt.Fprintf(os.Stderr, "did you mean: %s\n", strings.Join(sug, ", "))
	}
	ctx, cancel := interruptible()
	defer cancel()
	d, err := db.Get(ctx, path)
	if err != nil {
		return err
	}
	if file := saveTarget(cfg, path); file != "" {
		if err := snapshot.Save(file, d); err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", file)
	}
	switch {
	case cfg.Search != "":
		_, err = io.WriteString(cc.Out, filter.Contains(string(d), cfg.Search))
	case cfg.Raw:
		_, err = cc.Out.Write(d)
	default:
		err = viewDoc(cfg.MainConfig, cc.Out, d, "")
	}
	return err
}

func saveTarget(cfg *FetchConfig, path string) string {
	if cfg.SaveAs != "" {
		return cfg.SaveAs
	}
	if cfg.Save {
		return snapshot.FileName(path)
	}
	return ""
}
