package main

import (
	"fmt"
	"io"

	"github.com/signadot/rtdbview/encode"
	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/parse"
	"github.com/signadot/rtdbview/snapshot"

	"github.com/scott-cotton/cli"
)

func getObjFile(cc *cli.Context, path string, opts ...parse.ParseOption) (*ir.Node, error) {
	d, err := readInput(cc, path)
	if err != nil {
		return nil, err
	}
	node, err := parse.Parse(d, opts...)
	if err != nil {
		return nil, err
	}
	if node == nil {
		return nil, errInvalidJSON
	}
	return node, nil
}

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		cfg.Diff.Usage(cc, err)
		return cli.ExitCodeErr(1)
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires 2 args, got %v", cli.ErrUsage, args)
	}
	a, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	b, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	differs, err := diffNodes(cfg, cc.Out, a, b)
	if err != nil {
		return err
	}
	if differs {
		return cli.ExitCodeErr(1)
	}
	return nil
}

func diffNodes(cfg *DiffConfig, w io.Writer, a, b *ir.Node) (bool, error) {
	if cfg.Merge {
		p, err := snapshot.MergePatch(a, b)
		if err != nil {
			return false, err
		}
		if p.Type == ir.ObjectType && len(p.Fields) == 0 {
			return false, nil
		}
		return true, encode.Encode(p, w, cfg.encOpts(w)...)
	}
	text, err := snapshot.DiffText(a, b)
	if err != nil {
		return false, err
	}
	if text == "" {
		return false, nil
	}
	_, err = io.WriteString(w, text)
	return true, err
}

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: patch requires 2 args, got %v", cli.ErrUsage, args)
	}
	doc, err := getObjFile(cc, args[0], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[0], err)
	}
	p, err := getObjFile(cc, args[1], cfg.parseOpts()...)
	if err != nil {
		return fmt.Errorf("error decoding %s: %w", args[1], err)
	}
	res, err := snapshot.Apply(doc, p)
	if err != nil {
		return err
	}
	return encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...)
}
