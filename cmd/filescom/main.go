// Command filescom operates on a Files.com site from the shell.
//
// Configuration comes from an optional YAML file, .env files and the process
// environment (FILES_COM_*, LOG_*, TRACING_*).
package main

import (
	"context"
	"fmt"
	"io"
	"os"
)

const (
	serviceName    = "filescom"
	serviceVersion = "0.1.0"
)

func main() {
	err := execute(context.Background(), &app{}, os.Args[1:], os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// execute runs args on a fresh root command.
// Spans are flushed and the logger synced whether or not the command fails.
func execute(ctx context.Context, a *app, args []string, in io.Reader, out io.Writer) error {
	defer a.close()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(in)
	cmd.SetOut(out)

	return cmd.ExecuteContext(ctx)
}
