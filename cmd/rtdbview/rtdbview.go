package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"time"

	"github.com/signadot/rtdbview/config"
	"github.com/signadot/rtdbview/firebase"

	"github.com/scott-cotton/cli"
)

func rtdbMain(cfg *MainConfig, cc *cli.Context, args []string) error {
	defer func() {
		if cfg.CloseOut != nil {
			cfg.CloseOut()
		}
	}()
	args, err := cfg.Main.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return cli.ErrNoCommandProvided
	}
	sub := cfg.Main.FindSub(cc, args[0])
	if sub == nil {
		return fmt.Errorf("%w: %q not found", cli.ErrNoSuchCommand, args[0])
	}
	err = sub.Run(cc, args[1:])
	if errors.Is(err, cli.ErrUsage) {
		sub.Usage(cc, err)
		os.Exit(sub.Exit(cc, err))
	}
	return err
}

func (cfg *MainConfig) outOpt(cc *cli.Context, a string) (any, error) {
	cfg.Out = a
	if a == "-" {
		return nil, nil
	}
	f, err := os.OpenFile(cfg.Out, os.O_CREATE|os.O_TRUNC|os.O_RDWR, 0644)
	if err != nil {
		return nil, err
	}
	cc.Out = f
	cfg.CloseOut = f.Close
	return nil, nil
}

func (cfg *MainConfig) settings() (*config.Settings, error) {
	return config.Load(cfg.Config)
}

// interruptible returns a context cancelled by ^C.
func interruptible() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

// signedInDB opens the configured database with the stored token of the
// configured account.
func (cfg *MainConfig) signedInDB() (*firebase.DB, *config.Settings, error) {
	s, err := cfg.settings()
	if err != nil {
		return nil, nil, err
	}
	if err := s.ValidateDB(); err != nil {
		return nil, nil, err
	}
	if s.ViewerEmail == "" {
		return nil, nil, fmt.Errorf("%w: viewerEmail", config.ErrMissing)
	}
	sess, err := firebase.NewTokenStore().Load(s.ViewerEmail)
	if err != nil {
		return nil, nil, fmt.Errorf("%w (run rtdbview signin)", err)
	}
	if sess.Expired(time.Now()) {
		fmt.Fprintf(os.Stderr, "warning: token for %s has expired, run rtdbview signin\n", s.ViewerEmail)
	}
	db, err := firebase.NewDB(s.DatabaseURL, sess.IDToken, cfg.clientOpts()...)
	if err != nil {
		return nil, nil, err
	}
	return db, s, nil
}
