// Command etl normalizes one jurisdiction's raw fee-schedule CSV into the
// canonical fee staging shape.
//
// Usage:
//
//	etl [-profile name] [-encoding name] input.csv output.csv
//
// The los_angeles and salt_lake profiles carry default input/output paths and
// may be run with no positional arguments. Rows that cannot be normalized are
// reported individually on stderr and skipped; the batch itself always runs to
// completion, and the count of rows written is printed on stdout.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/civicdata/fee-staging-etl/internal/adapter/tabular"
	"github.com/civicdata/fee-staging-etl/internal/config"
	"github.com/civicdata/fee-staging-etl/internal/domain"
	"github.com/civicdata/fee-staging-etl/internal/observability"
	"github.com/civicdata/fee-staging-etl/internal/pipeline"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage: etl [-profile name] [-encoding name] input.csv output.csv")
	flag.PrintDefaults()
}

func main() {
	profileFlag := flag.String("profile", "", "normalization profile: los_angeles, salt_lake, or universal")
	encodingFlag := flag.String("encoding", "", "input file encoding: utf-8, windows-1252, or iso-8859-1")
	flag.Usage = usage
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to load config:", err)
		os.Exit(1)
	}
	if *profileFlag != "" {
		cfg.Profile = *profileFlag
	}
	if *encodingFlag != "" {
		cfg.Encoding = *encodingFlag
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	profile, err := domain.ProfileByName(cfg.Profile)
	if err != nil {
		logger.Error("invalid profile", "error", err)
		os.Exit(1)
	}

	inputPath, outputPath, ok := resolvePaths(flag.Args(), profile)
	if !ok {
		usage()
		os.Exit(2)
	}

	reader, err := tabular.NewReader(inputPath, cfg.Encoding, logger)
	if err != nil {
		logger.Error("invalid input configuration", "error", err)
		os.Exit(1)
	}
	writer := tabular.NewWriter(outputPath, profile, logger)
	processor := pipeline.NewProcessor(profile, logger, metrics)

	p := pipeline.New(reader, processor, writer, logger, metrics)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	report, err := p.Run(ctx)
	if err != nil {
		logger.Error("batch failed", "error", err)
		os.Exit(1)
	}

	for _, f := range report.Failures {
		fmt.Fprintf(os.Stderr, "row %d: %s\n", f.Index, f.Reason)
	}
	fmt.Printf("transformed %d rows\n", report.RowsOut)
}

// resolvePaths picks input/output from the positional arguments, falling back
// to the profile's default paths when none are given.
func resolvePaths(args []string, profile domain.Profile) (string, string, bool) {
	switch len(args) {
	case 2:
		return args[0], args[1], true
	case 0:
		if profile.DefaultInput != "" && profile.DefaultOutput != "" {
			return profile.DefaultInput, profile.DefaultOutput, true
		}
	}
	return "", "", false
}
