package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/wfreview"
	"github.com/viant/wfreview/tracing"
)

var (
	configURL string
	traceFile string
)

// errReviewFailed marks failures already reported on stdout.
var errReviewFailed = errors.New("review failed")

var rootCmd = &cobra.Command{
	Use:           "wfreview",
	Short:         "Review a workflow configuration document",
	Version:       wfreview.Version,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configURL, "config", "c", "", "YAML configuration file")
	rootCmd.Flags().StringVarP(&traceFile, "trace", "t", "", "write OpenTelemetry spans to file")
}

func run(ctx context.Context) error {
	fs := afs.New()
	config := wfreview.DefaultConfig()
	if configURL != "" {
		var err error
		if config, err = wfreview.LoadConfig(ctx, fs, configURL); err != nil {
			return err
		}
	}
	if traceFile != "" {
		config.Tracing.Output = traceFile
	}
	srv, err := wfreview.New(wfreview.WithConfig(config), wfreview.WithFS(fs))
	if err != nil {
		return err
	}
	defer func() {
		if err := tracing.Shutdown(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to flush traces: %v\n", err)
		}
	}()
	if err = srv.Review(ctx, os.Stdout); err != nil {
		return fmt.Errorf("%w: %w", errReviewFailed, err)
	}
	return nil
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errReviewFailed) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
