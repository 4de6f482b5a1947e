package main

import (
	"fmt"
	"io"
	"os"

	"github.com/code19m/errx"
	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"github.com/rise-and-shine/filescom/filestore"
	"github.com/rise-and-shine/filescom/sorter"
)

//nolint:gochecknoglobals // terminal styles
var (
	dirColor     = color.New(color.FgBlue, color.Bold)
	successColor = color.New(color.FgGreen)
	missingColor = color.New(color.FgRed)
)

// filescom ls <dir>
func newLsCmd(a *app) *cobra.Command {
	var (
		sortBy      string
		excludeZero bool
	)

	cmd := &cobra.Command{
		Use:   "ls <dir>",
		Short: "List the entries of a remote directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := filestore.ListFilesConfig{
				DirectoryPath:   args[0],
				ExcludeZeroSize: excludeZero,
			}
			if sortBy != "" {
				cfg.SortBy = sorter.MakeFromStr(sortBy, filestore.SortableFields()...).First()
				if cfg.SortBy == nil {
					return errx.New("invalid --sort, expected field:asc|desc",
						errx.WithType(errx.T_Validation),
						errx.WithDetails(errx.D{"sort": sortBy}),
					)
				}
			}

			files, err := a.store.ListFiles(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			if files == nil {
				fmt.Fprintln(cmd.ErrOrStderr(), "directory is empty")
				return nil
			}

			printEntries(cmd.OutOrStdout(), files)
			return nil
		},
	}

	cmd.Flags().StringVar(&sortBy, "sort", "", "sort by field:direction, e.g. size:desc")
	cmd.Flags().BoolVar(&excludeZero, "exclude-zero", false, "skip zero-size entries")
	return cmd
}

// filescom dirs <dir>
func newDirsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "dirs <dir>",
		Short: "List the subdirectories of a remote directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dirs, err := a.store.ListDirectories(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printEntries(cmd.OutOrStdout(), dirs)
			return nil
		},
	}
}

// filescom cat <path>
func newCatCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "cat <path>",
		Short: "Print a remote file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.store.DownloadFileToStream(cmd.Context(), args[0], cmd.OutOrStdout())
		},
	}
}

// filescom get <path> [local-dir]
func newGetCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path> [local-dir]",
		Short: "Download a remote file into a local directory",
		Long:  "Download a remote file. local-dir defaults to the configured local storage path.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			localDir := a.cfg.FilesCom.LocalStoragePath
			if len(args) == 2 {
				localDir = args[1]
			}

			localPath, err := a.store.DownloadFileToDisk(cmd.Context(), args[0], localDir)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), localPath)
			return nil
		},
	}
}

// filescom put <local-file> <remote-path>
func newPutCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "put <local-file> <remote-path>",
		Short: "Upload a local file, use - for stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var content io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errx.Wrap(err)
				}
				defer f.Close()
				content = f
			}

			remotePath, err := a.store.UploadFile(cmd.Context(), content, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), remotePath)
			return nil
		},
	}
}

// filescom mv <from> <to>
func newMvCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <from> <to>",
		Short: "Move a remote file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.store.MoveFile(cmd.Context(), args[0], args[1])
		},
	}
}

// filescom rm <path>...
func newRmCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>...",
		Short: "Delete remote files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range args {
				if err := a.store.DeleteFile(cmd.Context(), p); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// filescom mkdir <path>
func newMkdirCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a remote directory and its parents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.store.CreateDirectory(cmd.Context(), args[0])
		},
	}
}

// filescom exists <path>
func newExistsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "Report whether a remote path exists",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := a.store.FileExists(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if ok {
				successColor.Fprintln(cmd.OutOrStdout(), "exists")
				return nil
			}
			missingColor.Fprintln(cmd.OutOrStdout(), "not found")
			return nil
		},
	}
}

func printEntries(w io.Writer, files []filestore.FileResponse) {
	width := lo.Max(lo.Map(files, func(f filestore.FileResponse, _ int) int {
		return len(fmt.Sprint(f.Attributes.Size))
	}))

	for _, f := range files {
		fmt.Fprintf(w, "%*d  ", width, f.Attributes.Size)
		if f.Attributes.IsDir() {
			dirColor.Fprintln(w, f.Attributes.DisplayName+"/")
			continue
		}
		fmt.Fprintln(w, f.Attributes.DisplayName)
	}
}
