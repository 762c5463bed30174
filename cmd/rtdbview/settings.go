package main

import (
	"fmt"
	"os"

	"github.com/signadot/rtdbview/config"

	"github.com/scott-cotton/cli"
)

func showSettings(cfg *SettingsConfig, cc *cli.Context, args []string) error {
	if _, err := cfg.Settings.Parse(cc, args); err != nil {
		return err
	}
	s, err := cfg.settings()
	if err != nil {
		return err
	}
	if cfg.Save {
		file := cfg.Config
		if file == "" {
			file = config.DefaultFile()
		}
		if err := s.Save(file); err != nil {
			return fmt.Errorf("could not save settings: %w", err)
		}
		fmt.Fprintf(os.Stderr, "saved %s\n", file)
	}
	d, err := s.YAML(true)
	if err != nil {
		return err
	}
	_, err = cc.Out.Write(d)
	return err
}
