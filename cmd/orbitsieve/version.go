package main

import (
	"fmt"

	"github.com/aretw0/orbitsieve"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of orbitsieve",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "orbitsieve version %s\n", orbitsieve.Version)
		},
	}
}
