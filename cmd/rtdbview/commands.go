package main

import (
	"github.com/scott-cotton/cli"
	"github.com/signadot/rtdbview/track"
)

func MainCommand() *cli.Command {
	cfg := &MainConfig{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts := append(sOpts, &cli.Opt{
		Name:        "o",
		Description: "output file (default stdout)",
		Type:        cli.NamedFuncOpt(cfg.outOpt, "(filepath)"),
	}, &cli.Opt{
		Name:        "timeout",
		Description: "timeout of each Firebase request",
		Type:        cli.NamedFuncOpt(cfg.timeoutOpt, "(duration)"),
	})

	return cli.NewCommandAt(&cfg.Main, "rtdbview").
		WithSynopsis("rtdbview [opts] command [opts]").
		WithDescription("rtdbview browses and records Firebase Realtime Database data.").
		WithOpts(opts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return rtdbMain(cfg, cc, args)
		}).
		WithSubs(
			ViewCommand(cfg),
			FilterCommand(cfg),
			SettingsCommand(cfg),
			SignInCommand(cfg),
			SignOutCommand(cfg),
			WhoAmICommand(cfg),
			FetchCommand(cfg),
			ZonesCommand(cfg),
			VisitCommand(cfg),
			SessionCommand(cfg),
			DiffCommand(cfg),
			PatchCommand(cfg))
}

func ViewCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ViewConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("view").
		WithAliases("v").
		WithOpts(opts...).
		WithSynopsis("view [-s keyword | -tokens] [files]").
		WithDescription("parse JSON leniently and pretty print it").
		WithRun(func(cc *cli.Context, args []string) error {
			return view(cfg, cc, args)
		})
	cfg.View = cmd
	return cmd
}

func FilterCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FilterConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Filter, "filter").
		WithAliases("f").
		WithSynopsis("filter <keyword> [files]").
		WithDescription("print the lines of the raw text containing keyword, ignoring case").
		WithRun(func(cc *cli.Context, args []string) error {
			return filterText(cfg, cc, args)
		})
}

func SettingsCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SettingsConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("settings").
		WithAliases("config").
		WithOpts(opts...).
		WithSynopsis("settings [-save]").
		WithDescription("show the effective settings, file and environment combined").
		WithRun(func(cc *cli.Context, args []string) error {
			return showSettings(cfg, cc, args)
		})
	cfg.Settings = cmd
	return cmd
}

func SignInCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SignInConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.SignIn, "signin").
		WithAliases("login").
		WithSynopsis("signin").
		WithDescription("sign in with the configured email and password and keep the token in the keyring").
		WithRun(func(cc *cli.Context, args []string) error {
			return signIn(cfg, cc, args)
		})
}

func SignOutCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SignInConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.SignIn, "signout").
		WithAliases("logout").
		WithSynopsis("signout").
		WithDescription("forget the stored token").
		WithRun(func(cc *cli.Context, args []string) error {
			return signOut(cfg, cc, args)
		})
}

func WhoAmICommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SignInConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.SignIn, "whoami").
		WithSynopsis("whoami").
		WithDescription("show the signed in account").
		WithRun(func(cc *cli.Context, args []string) error {
			return whoAmI(cfg, cc, args)
		})
}

func FetchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &FetchConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("fetch").
		WithAliases("get", "g").
		WithOpts(opts...).
		WithSynopsis("fetch [-s keyword] [-save | -saveAs file] [path]").
		WithDescription("fetch a database path, the configured default path when omitted").
		WithRun(func(cc *cli.Context, args []string) error {
			return fetch(cfg, cc, args)
		})
	cfg.Fetch = cmd
	return cmd
}

func ZonesCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &ZonesConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("zones").
		WithAliases("z").
		WithOpts(opts...).
		WithSynopsis("zones [-where expr] [-fetch | file]").
		WithDescription("show zone visit analytics").
		WithRun(func(cc *cli.Context, args []string) error {
			return zoneStats(cfg, cc, args)
		})
	cfg.Zones = cmd
	return cmd
}

func VisitCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &VisitConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Visit, "visit").
		WithSynopsis("visit <zone>...").
		WithDescription("count a visit to each zone").
		WithRun(func(cc *cli.Context, args []string) error {
			return visit(cfg, cc, args)
		})
}

func SessionCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &SessionConfig{MainConfig: mainCfg, Every: track.DefaultInterval}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	opts = append(opts, &cli.Opt{
		Name:        "every",
		Description: "heartbeat interval",
		Type:        cli.NamedFuncOpt(cli.FuncOpt(cfg.mkEvery()), "(duration)"),
	})
	cmd := cli.NewCommand("session").
		WithOpts(opts...).
		WithSynopsis("session -user id [-every 5s]").
		WithDescription("track an online session until interrupted").
		WithRun(func(cc *cli.Context, args []string) error {
			return session(cfg, cc, args)
		})
	cfg.Session = cmd
	return cmd
}

func DiffCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &DiffConfig{MainConfig: mainCfg}
	opts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}
	cmd := cli.NewCommand("diff").
		WithAliases("d").
		WithOpts(opts...).
		WithSynopsis("diff [-merge] a b").
		WithDescription("compare two JSON documents, exiting 1 when they differ").
		WithRun(func(cc *cli.Context, args []string) error {
			return diff(cfg, cc, args)
		})
	cfg.Diff = cmd
	return cmd
}

func PatchCommand(mainCfg *MainConfig) *cli.Command {
	cfg := &PatchConfig{MainConfig: mainCfg}
	return cli.NewCommandAt(&cfg.Patch, "patch").
		WithAliases("p").
		WithSynopsis("patch <doc> <patch>").
		WithDescription("apply a merge patch, or a list of JSON patch operations, to a document").
		WithRun(func(cc *cli.Context, args []string) error {
			return patch(cfg, cc, args)
		})
}
