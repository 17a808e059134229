package main

import (
	"github.com/aretw0/orbitsieve/internal/presentation/report"
	"github.com/spf13/cobra"
)

func newGroupCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "group",
		Short: "List the closed symmetry group",
		Long:  `Closes the configured generators over the reference universe and lists every element with its order.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			eng, err := newEngine(cfg, logger)
			if err != nil {
				return err
			}
			g, _, err := eng.Group(cmd.Context())
			if err != nil {
				return err
			}
			return report.Group(cmd.OutOrStdout(), g)
		},
	}
	addEngineFlags(cmd)
	return cmd
}
