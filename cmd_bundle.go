package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/earlgray283/segkit/internal/bundle"
)

func newBundleCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "bundle [file]",
		Short: "Inline imported packages into a single submission file",
		Long: `Inline every package imported from a bundled host (github.com and
golang.org by default) into the submission, so it compiles on a judge that
only has the standard library. Reads stdin when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("output") {
				a.cfg.Bundle.Output = output
			}
			return a.runBundle(cmd, args)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the bundled file here instead of stdout")
	return cmd
}

func (a *app) runBundle(cmd *cobra.Command, args []string) error {
	var (
		src []byte
		dir = "."
		err error
	)
	if len(args) == 1 {
		src, err = os.ReadFile(args[0])
		dir = filepath.Dir(args[0])
	} else {
		src, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read submission: %w", err)
	}

	resolver := bundle.Chain{
		bundle.PackagesResolver{Dir: dir},
		bundle.NewModCacheResolver(),
	}

	out, err := bundle.New(a.cfg.Bundle.Hosts, resolver, a.logger).Bundle(src)
	if err != nil {
		return err
	}

	if a.cfg.Bundle.Output == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := createFileWithBytes(a.cfg.Bundle.Output, out); err != nil {
		return fmt.Errorf("write bundle: %w", err)
	}
	a.logger.Info("bundle written", slog.String("path", a.cfg.Bundle.Output), slog.Int("bytes", len(out)))
	return nil
}
