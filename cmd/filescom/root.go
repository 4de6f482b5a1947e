package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "filescom",
		Short:         "Files.com storage client",
		Long:          "filescom uploads, downloads, lists and moves files on a Files.com site.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.boot(cmd.Context())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configFile, "config", "c", "", "YAML config file")
	flags.StringSliceVar(&a.envFiles, "env-file", []string{".env"}, ".env files to load")
	flags.BoolVar(&a.printConfig, "print-config", false, "print the loaded config with secrets masked")

	// SDK
	root.AddCommand(newLsCmd(a))
	root.AddCommand(newDirsCmd(a))
	root.AddCommand(newCatCmd(a))
	root.AddCommand(newGetCmd(a))
	root.AddCommand(newPutCmd(a))
	root.AddCommand(newMvCmd(a))
	root.AddCommand(newRmCmd(a))
	root.AddCommand(newMkdirCmd(a))
	root.AddCommand(newExistsCmd(a))

	// REST
	root.AddCommand(newPutCSVCmd(a))

	return root
}
