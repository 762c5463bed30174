package main

import (
	"errors"
	"fmt"

	"github.com/signadot/rtdbview/ir"
	"github.com/signadot/rtdbview/parse"
	"github.com/signadot/rtdbview/token"
	"github.com/signadot/rtdbview/zones"

	"github.com/scott-cotton/cli"
)

func zoneStats(cfg *ZonesConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Zones.Parse(cc, args)
	if err != nil {
		return err
	}
	var d []byte
	switch {
	case cfg.Fetch && len(args) > 0:
		return fmt.Errorf("%w: -fetch takes no file", cli.ErrUsage)
	case cfg.Fetch:
		db, _, err := cfg.signedInDB()
		if err != nil {
			return err
		}
		ctx, cancel := interruptible()
		defer cancel()
		d, err = db.Get(ctx, "zones")
		if err != nil {
			return err
		}
	case len(args) > 1:
		return fmt.Errorf("%w: zones takes at most one file, got %v", cli.ErrUsage, args)
	default:
		d, err = readInput(cc, inputs(args)[0])
		if err != nil {
			return err
		}
	}
	pos := map[*ir.Node]*token.Pos{}
	node, err := parse.Parse(d, append(cfg.parseOpts(), parse.ParsePositions(pos))...)
	if err != nil {
		return err
	}
	zs, err := zones.Extract(node)
	if err != nil {
		var ze *zones.ZoneErr
		if errors.As(err, &ze) && pos[ze.Visits] != nil {
			return fmt.Errorf("%w at %s", err, pos[ze.Visits])
		}
		return err
	}
	stats := zones.Stats(zs)
	if cfg.Where != "" {
		stats, err = zones.Where(stats, cfg.Where)
		if err != nil {
			return err
		}
	}
	return zones.Render(cc.Out, stats, cfg.Width, cfg.useColor(cc.Out))
}
