package main

import (
	"fmt"
	"time"

	"github.com/signadot/rtdbview/firebase"

	"github.com/scott-cotton/cli"
)

func signIn(cfg *SignInConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.SignIn.Parse(cc, args); err != nil {
		return err
	}
	s, err := cfg.settings()
	if err != nil {
		return err
	}
	if err := s.ValidateAuth(); err != nil {
		return err
	}
	ctx, cancel := interruptible()
	defer cancel()
	res, err := firebase.NewAuth(cfg.clientOpts()...).SignIn(ctx, s.WebAPIKey, s.ViewerEmail, s.ViewerPassword)
	if err != nil {
		return fmt.Errorf("sign in failed: %w", err)
	}
	if res.Email == "" {
		res.Email = s.ViewerEmail
	}
	sess := firebase.NewSession(res, time.Now())
	if err := firebase.NewTokenStore().Save(sess); err != nil {
		return fmt.Errorf("could not store token: %w", err)
	}
	_, err = fmt.Fprintf(cc.Out, "Sign-in OK: %s\n", sess.Email)
	return err
}

func signOut(cfg *SignInConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.SignIn.Parse(cc, args); err != nil {
		return err
	}
	s, err := cfg.settings()
	if err != nil {
		return err
	}
	if err := firebase.NewTokenStore().Delete(s.ViewerEmail); err != nil {
		return err
	}
	_, err = fmt.Fprintln(cc.Out, "Signed out")
	return err
}

func whoAmI(cfg *SignInConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.SignIn.Parse(cc, args); err != nil {
		return err
	}
	s, err := cfg.settings()
	if err != nil {
		return err
	}
	sess, err := firebase.NewTokenStore().Load(s.ViewerEmail)
	if err != nil {
		return err
	}
	state := ""
	if sess.Expired(time.Now()) {
		state = " (expired)"
	}
	_, err = fmt.Fprintf(cc.Out, "Signed in as %s @ %s%s\n", sess.Email, sess.SignedIn.Local().Format(time.TimeOnly), state)
	return err
}
