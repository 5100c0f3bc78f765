package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"example/room-image-gen/internal/catalog"
	"example/room-image-gen/internal/config"
	"example/room-image-gen/internal/gemini"
	"example/room-image-gen/internal/service"
)

var (
	flagOut         string
	flagConcurrency int
	flagModel       string
	flagBackend     string
	flagReport      string
	flagDryRun      bool
)

var ErrBatchFailed = errors.New("one or more images failed")

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	applyFlags(cmd, cfg)

	if err := cfg.Validate(); err != nil {
		if !(flagDryRun && errors.Is(err, config.ErrMissingCredential)) {
			return err
		}
	}

	entries, err := catalog.Select(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	printBanner(out, cfg, len(entries))

	if flagDryRun {
		imageGen := service.NewImageGenerator(nil, cfg.OutputDir, service.DefaultRetryPolicy)
		pending := service.NewBatchProcessor(imageGen, cfg.Concurrent).Plan(entries)
		fmt.Fprintf(out, "  %d to generate, %d already present\n", len(pending), len(entries)-len(pending))
		for _, e := range pending {
			fmt.Fprintf(out, "    - %s\n", e.ID)
		}
		return nil
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	gen, err := newGenerator(ctx, cfg)
	if err != nil {
		return err
	}

	imageGen := service.NewImageGenerator(gen, cfg.OutputDir, service.DefaultRetryPolicy)
	processor := service.NewBatchProcessor(imageGen, cfg.Concurrent)

	report, err := processor.Run(ctx, entries)
	if err != nil {
		return err
	}
	report.Print(out)

	if cfg.Report != "" {
		if err := report.Save(cfg.Report); err != nil {
			log.Printf("Error saving report: %v", err)
		} else {
			log.Printf("Report written to %s", cfg.Report)
		}
	}

	if report.ExitCode() != 0 {
		return ErrBatchFailed
	}
	return nil
}

func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	f := cmd.Flags()
	if f.Changed("out") {
		cfg.OutputDir = flagOut
	}
	if f.Changed("concurrency") {
		cfg.Concurrent = flagConcurrency
	}
	if f.Changed("model") {
		cfg.Model = flagModel
	}
	if f.Changed("backend") {
		cfg.Backend = flagBackend
	}
	if f.Changed("report") {
		cfg.Report = flagReport
	}
}

func newGenerator(ctx context.Context, cfg *config.Config) (service.Generator, error) {
	switch cfg.Backend {
	case config.BackendGenAI:
		client, err := gemini.SetupClient(ctx, cfg.APIKey, "", "")
		if err != nil {
			return nil, err
		}
		return gemini.NewSDKClient(client, cfg.Model), nil
	case config.BackendVertex:
		client, err := gemini.SetupClient(ctx, "", cfg.Project, cfg.Location)
		if err != nil {
			return nil, err
		}
		return gemini.NewSDKClient(client, cfg.Model), nil
	default:
		return gemini.NewRESTClient(cfg.APIKey, cfg.Model), nil
	}
}

func printBanner(w io.Writer, cfg *config.Config, total int) {
	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\n", rule)
	fmt.Fprintln(w, "  Room Image Generator")
	fmt.Fprintf(w, "  Model: %s (%s)\n", cfg.Model, cfg.Backend)
	fmt.Fprintf(w, "  Images to generate: %d\n", total)
	fmt.Fprintf(w, "  Output: %s\n", cfg.OutputDir)
	fmt.Fprintf(w, "%s\n\n", rule)
}
