package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/signadot/rtdbview/track"

	"github.com/scott-cotton/cli"
)

func visit(cfg *VisitConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Visit.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: visit requires a zone", cli.ErrUsage)
	}
	db, _, err := cfg.signedInDB()
	if err != nil {
		return err
	}
	ctx, cancel := interruptible()
	defer cancel()
	z := &track.Zones{Store: db}
	for _, zone := range args {
		n, err := z.Visit(ctx, zone)
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(cc.Out, "%s visit updated -> %d\n", zone, n); err != nil {
			return err
		}
	}
	return nil
}

func session(cfg *SessionConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Session.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 0 {
		return fmt.Errorf("%w: session takes no arguments, got %v", cli.ErrUsage, args)
	}
	if cfg.User == "" {
		return fmt.Errorf("%w: -user is required", cli.ErrUsage)
	}
	db, _, err := cfg.signedInDB()
	if err != nil {
		return err
	}
	ctx, cancel := interruptible()
	defer cancel()
	s := track.NewSession(db, cfg.User)
	s.Interval = cfg.Every
	if err := s.Start(ctx); err != nil {
		return err
	}
	fmt.Fprintf(cc.Out, "session %s started for %s, ^C to end\n", s.ID(), cfg.User)
	err = s.Run(ctx, func(err error) {
		fmt.Fprintf(os.Stderr, "heartbeat: %v\n", err)
	})
	if err != nil {
		return err
	}
	// ctx is done; ending needs a live one
	played, err := s.End(context.Background())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(cc.Out, "session ended after %s\n", played.Round(time.Second))
	return err
}
