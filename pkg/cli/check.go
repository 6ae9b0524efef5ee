/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"

	"github.com/s33d1ing/verskit/pkg/defaults"
	"github.com/s33d1ing/verskit/pkg/serializer"
	"github.com/s33d1ing/verskit/pkg/version"
)

// checkResult records the outcome for a single manifest entry.
type checkResult struct {
	Version string `json:"version" yaml:"version"`
	Valid   bool   `json:"valid" yaml:"valid"`
	Error   string `json:"error,omitempty" yaml:"error,omitempty"`
}

// checkSummary aggregates the per-entry outcomes.
type checkSummary struct {
	Total   int `json:"total" yaml:"total"`
	Valid   int `json:"valid" yaml:"valid"`
	Invalid int `json:"invalid" yaml:"invalid"`
}

// checkReport is the full output of a bulk validation run.
type checkReport struct {
	Results []checkResult `json:"results" yaml:"results"`
	Summary checkSummary  `json:"summary" yaml:"summary"`
}

// checkCmdOptions holds parsed options for the check command.
type checkCmdOptions struct {
	filePath string
	failFast bool
	format   serializer.Format
	output   string
}

// parseCheckCmdOptions parses and validates command options.
func parseCheckCmdOptions(cmd *cli.Command) (*checkCmdOptions, error) {
	opts := &checkCmdOptions{
		filePath: cmd.String("file"),
		failFast: cmd.Bool("fail-fast"),
		output:   cmd.String("output"),
	}

	if opts.filePath == "" {
		return nil, fmt.Errorf("--file is required")
	}

	var err error
	opts.format, err = parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}

	return opts, nil
}

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Validate every version in a manifest",
		Description: `Validates each entry of a version manifest against the selected grammar
and emits a per-entry result plus a summary. Entries are checked
concurrently with a bounded worker count; results keep manifest order.

The command exits non-zero when any entry is invalid. With --fail-fast
the run aborts at the first invalid entry and reports only that one.

# Examples

Check a manifest:
  verskit check --file versions.yaml

Check a remote manifest as JSON:
  verskit check --file https://example.com/versions.json --format json

Abort on the first invalid entry:
  verskit check --file versions.yaml --fail-fast`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "file",
				Aliases:  []string{"f"},
				Required: true,
				Usage: `Path/URI to the version manifest to validate.
	Supports: file paths and HTTP/HTTPS URLs.`,
			},
			&cli.BoolFlag{
				Name:  "fail-fast",
				Usage: "Stop at the first invalid version instead of checking all entries",
			},
			kindFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseCheckCmdOptions(cmd)
			if err != nil {
				return err
			}

			m, err := loadManifest(opts.filePath)
			if err != nil {
				return err
			}
			kind, err := resolveKind(cmd, m)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(ctx, defaults.CLICheckTimeout)
			defer cancel()

			slog.Info("checking versions",
				slog.Int("count", len(m.Versions)),
				slog.String("kind", kind),
				slog.Bool("failFast", opts.failFast),
			)

			report, err := runCheck(ctx, m.Versions, kind, opts.failFast)
			if err != nil {
				return err
			}

			ser := serializer.NewFileWriterOrStdout(opts.format, opts.output)
			defer func() {
				if closer, ok := ser.(interface{ Close() error }); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}
			}()

			if err := ser.Serialize(ctx, report); err != nil {
				return err
			}

			if report.Summary.Invalid > 0 {
				return fmt.Errorf("%d of %d versions invalid", report.Summary.Invalid, report.Summary.Total)
			}
			return nil
		},
	}
}

// runCheck validates all entries concurrently with a bounded worker count.
// Each worker writes its own slot, so results keep manifest order without
// further synchronization. With failFast the first invalid entry aborts
// the run and is returned as the error.
func runCheck(ctx context.Context, versions []string, kind string, failFast bool) (*checkReport, error) {
	results := make([]checkResult, len(versions))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(defaults.CheckConcurrency)

	for i, s := range versions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = checkOne(s, kind)
			if failFast && !results[i].Valid {
				return fmt.Errorf("version %q is invalid: %s", s, results[i].Error)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &checkReport{Results: results}
	report.Summary.Total = len(results)
	for _, r := range results {
		if r.Valid {
			report.Summary.Valid++
		} else {
			report.Summary.Invalid++
		}
	}
	return report, nil
}

// checkOne classifies a single entry via the non-erroring parse path, then
// re-parses invalid entries strictly to surface the reason.
func checkOne(s, kind string) checkResult {
	res := checkResult{Version: s}

	if kind == kindCore {
		if _, ok := version.TryParseVersion(s); ok {
			res.Valid = true
			return res
		}
		_, err := version.ParseVersion(s)
		res.Error = err.Error()
		return res
	}

	if _, ok := version.TryParseSemVer(s); ok {
		res.Valid = true
		return res
	}
	_, err := version.ParseSemVer(s)
	res.Error = err.Error()
	return res
}
