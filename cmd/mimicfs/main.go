package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/mimicfs/mimicfs/config"
	"github.com/mimicfs/mimicfs/filesystem"
	"github.com/mimicfs/mimicfs/internal/util"
	"github.com/mimicfs/mimicfs/seed"
	"github.com/mimicfs/mimicfs/shell"
)

func main() {
	app := &cli.App{
		Name:                   "mimicfs",
		Usage:                  "Interactive simulated filesystem for learning shell navigation",
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path (YAML or JSON)",
			},
			&cli.IntFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Log verbosity level between 1 (error) and 5 (trace)",
				Value:   3,
			},
			&cli.StringFlag{
				Name:    "seed",
				Aliases: []string{"s"},
				Usage:   "Seed file path (YAML or JSON) to pre-populate the tree",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		return err
	}

	util.InitializeLogger(cfg.LogLvl)
	logger := util.GetLogger("main")
	logger.Info().Int("verbose", c.Int("verbose")).Str("config", c.String("config")).
		Str("seed", c.String("seed")).Msg("MimicFS initializing")

	fs := filesystem.New(cfg)

	if seedPath := c.String("seed"); seedPath != "" {
		entries, err := seed.Load(seedPath)
		if err != nil {
			return fmt.Errorf("failed to load seed file: %w", err)
		}
		seed.Apply(fs, entries)
	}

	return shell.New(fs, cfg, os.Stdin, os.Stdout).Run()
}

// buildConfig layers defaults, the optional config file, and the verbose
// flag. An explicit --verbose wins over the file.
func buildConfig(c *cli.Context) (*config.Config, error) {
	var cfg *config.Config
	if path := c.String("config"); path != "" {
		loaded, err := config.NewConfigFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
		cfg = loaded
	} else {
		cfg = config.NewConfig(nil)
	}

	if c.IsSet("verbose") {
		verbose := c.Int("verbose")
		cfg.Merge(&config.ConfigOverride{LogLvl: &verbose})
	}

	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
