package main

import (
	"os"
	"path/filepath"

	"github.com/code19m/errx"
	"github.com/spf13/cobra"
)

// filescom put-csv <local-file> <remote-dir> [name]
func newPutCSVCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put-csv <local-file> <remote-dir> [name]",
		Short: "Upload a CSV file through the REST upload protocol",
		Long:  "Upload a CSV file as remote-dir/name. name defaults to the local file name.",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return errx.Wrap(err)
			}

			name := filepath.Base(args[0])
			if len(args) == 3 {
				name = args[2]
			}

			raw, err := a.rawService(cmd.Context())
			if err != nil {
				return err
			}
			return raw.UploadCSVFile(cmd.Context(), string(content), args[1], name)
		},
	}
}
