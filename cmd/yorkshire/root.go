package main

import (
	"github.com/spf13/cobra"

	"github.com/tboywixxy/yorkshire-global/pkg/config"
)

func newRootCmd() *cobra.Command {
	var envFiles []string

	root := &cobra.Command{
		Use:   "yorkshire",
		Short: "Yorkshire Global contact form API",
		Long: `yorkshire serves POST /api/contact for the Yorkshire Global website.

Configuration comes from the environment, optionally seeded from .env files.

  yorkshire serve                     Start the HTTP server
  yorkshire preview --out ./tmp/mail  Render both emails to disk
  yorkshire submit --token XXXX       Post a submission to a running server`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return config.LoadEnv(envFiles...)
		},
	}

	root.PersistentFlags().StringSliceVar(&envFiles, "env-file", nil, "load variables from these .env files (default ./.env when present)")

	root.AddCommand(
		newServeCmd(),
		newPreviewCmd(),
		newSubmitCmd(),
	)
	return root
}
