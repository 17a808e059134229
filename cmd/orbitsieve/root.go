package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/aretw0/orbitsieve/internal/config"
	"github.com/aretw0/orbitsieve/internal/logging"
	"github.com/spf13/cobra"
)

// newRootCmd builds the command tree. Commands write to cmd.OutOrStdout so
// tests can capture them.
func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "orbitsieve",
		Short: "orbitsieve reduces a diagram universe to its independent representatives",
		Long: `orbitsieve closes a set of symmetry generators into a finite group, sweeps the
Keldysh reference universe orbit by orbit and prints which components are
zero, independent, or related to a representative.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Persistent flags (available to all commands)
	root.PersistentFlags().String("config", "", "Path to a YAML config file")
	root.PersistentFlags().String("log-level", "", "Log level (debug, info, warn, error)")

	root.AddCommand(newClassifyCmd(), newGroupCmd(), newVersionCmd())
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig reads --config (or the defaults) and applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, *slog.Logger, error) {
	cfg := config.Default()
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, nil, err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if f := flags.Lookup("mode"); f != nil && f.Changed {
		cfg.Mode = f.Value.String()
	}
	if f := flags.Lookup("format"); f != nil && f.Changed {
		cfg.Format = f.Value.String()
	}
	if f := flags.Lookup("bound"); f != nil && f.Changed {
		cfg.ClosureBound, _ = flags.GetInt("bound")
	}
	if f := flags.Lookup("witness-limit"); f != nil && f.Changed {
		cfg.WitnessLimit, _ = flags.GetInt("witness-limit")
	}
	if f := flags.Lookup("no-particle-hole"); f != nil && f.Changed {
		off, _ := flags.GetBool("no-particle-hole")
		cfg.ParticleHole = !off
	}
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, err
	}
	return cfg, logging.NewWithWriter(cmd.ErrOrStderr(), level), nil
}

// addEngineFlags registers the flags shared by classify and group.
func addEngineFlags(cmd *cobra.Command) {
	cmd.Flags().String("mode", "", "Generator set: default or extended")
	cmd.Flags().Int("bound", 0, "Maximum group order before closure fails")
	cmd.Flags().Int("witness-limit", 0, "Compare transformations over the first N diagrams only")
	cmd.Flags().Bool("no-particle-hole", false, "Disable the particle-hole parity link")
}
