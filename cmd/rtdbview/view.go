package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/signadot/rtdbview/encode"
	"github.com/signadot/rtdbview/filter"
	"github.com/signadot/rtdbview/parse"
	"github.com/signadot/rtdbview/token"

	"github.com/scott-cotton/cli"
)

var errInvalidJSON = errors.New("invalid JSON")

func view(cfg *ViewConfig, cc *cli.Context, args []string) error {
	args, err := cfg.View.Parse(cc, args)
	if err != nil {
		return err
	}
	files := inputs(args)
	for i, file := range files {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if cfg.Tokens {
			toks, err := token.Tokenize(d, token.LegacyEscapes(cfg.Legacy))
			token.PrintTokens(cc.Out, toks, file)
			if err != nil {
				return fmt.Errorf("error tokenizing %s: %w", file, err)
			}
			continue
		}
		if err := viewDoc(cfg.MainConfig, cc.Out, d, cfg.Search); err != nil {
			return fmt.Errorf("error processing %s: %w", file, err)
		}
		if i < len(files)-1 {
			if _, err := io.WriteString(cc.Out, "\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// viewDoc pretty prints d, keeping only the lines mentioning search when
// it is set.
func viewDoc(cfg *MainConfig, w io.Writer, d []byte, search string) error {
	node, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return err
	}
	if node == nil {
		return errInvalidJSON
	}
	if search == "" {
		return encode.Encode(node, w, cfg.encOpts(w)...)
	}
	buf := bytes.NewBuffer(nil)
	opts := append(cfg.encOpts(buf), encode.EncodeColors(nil))
	if err := encode.Encode(node, buf, opts...); err != nil {
		return err
	}
	_, err = io.WriteString(w, filter.Contains(buf.String(), search))
	return err
}

func filterText(cfg *FilterConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Filter.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: filter requires a keyword", cli.ErrUsage)
	}
	keyword := args[0]
	for _, file := range inputs(args[1:]) {
		d, err := readInput(cc, file)
		if err != nil {
			return err
		}
		if _, err := io.WriteString(cc.Out, filter.Contains(string(d), keyword)); err != nil {
			return err
		}
	}
	return nil
}
