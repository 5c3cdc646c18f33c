package main

import (
	"context"
	"errors"
	"fmt"

	docsite "github.com/alnah/go-docsite"
	"github.com/alnah/go-docsite/internal/config"
)

// Sentinel errors for CLI operations.
var (
	ErrNoDescriptors = errors.New("usage: docsite [flags] <descriptors.yaml>")
	ErrNoOutput      = errors.New("no output directory specified (use --output or a config file)")
)

// runGenerate loads config and descriptors, then runs one generation pass.
func runGenerate(ctx context.Context, args []string, flags *genFlags, env *Environment) error {
	if len(args) < 1 {
		return ErrNoDescriptors
	}

	cfg := config.DefaultConfig()
	var err error
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI flags win over file values.
	mergeFlags(flags, cfg)

	if cfg.Output == "" {
		return ErrNoOutput
	}

	nodes, err := loadDescriptors(args[0])
	if err != nil {
		return err
	}
	env.Logger.Debug("descriptors loaded", "path", args[0], "nodes", len(nodes))

	gen := docsite.NewGenerator(docsite.Config{
		OutputDir:  cfg.Output,
		Title:      cfg.Title,
		Version:    cfg.Version,
		Main:       cfg.Main,
		ReadmePath: cfg.Readme,
		LogoPath:   cfg.Logo,
		Highlight:  cfg.Highlight,
	}, nodes,
		docsite.WithWorkers(cfg.Workers),
		docsite.WithLogger(env.Logger),
	)

	indexPath, err := gen.Run(ctx)
	if err != nil {
		return err
	}

	if !flags.quiet {
		fmt.Fprintf(env.Stdout, "Generated %s\n", indexPath)
	}
	return nil
}

// mergeFlags overlays non-zero CLI flags onto the file config.
func mergeFlags(flags *genFlags, cfg *config.Config) {
	if flags.output != "" {
		cfg.Output = flags.output
	}
	if flags.title != "" {
		cfg.Title = flags.title
	}
	if flags.docVersion != "" {
		cfg.Version = flags.docVersion
	}
	if flags.main != "" {
		cfg.Main = flags.main
	}
	if flags.readme != "" {
		cfg.Readme = flags.readme
	}
	if flags.logo != "" {
		cfg.Logo = flags.logo
	}
	if flags.highlight != "" {
		cfg.Highlight = flags.highlight
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
}
