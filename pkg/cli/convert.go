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

	"github.com/s33d1ing/verskit/pkg/serializer"
	"github.com/s33d1ing/verskit/pkg/sysver"
	"github.com/s33d1ing/verskit/pkg/version"
)

// convertReport pairs one input with its converted form.
type convertReport struct {
	Input     string `json:"input" yaml:"input"`
	Converted string `json:"converted" yaml:"converted"`
}

func convertCmd() *cli.Command {
	return &cli.Command{
		Name:                  "convert",
		EnableShellCompletion: true,
		Usage:                 "Convert between semantic and legacy numeric versions",
		ArgsUsage:             "VERSION...",
		Description: `Converts semantic versions to the legacy numeric form, where major and
minor map directly, patch becomes the third (build) field, and the fourth
(revision) field stays unset. Prerelease and build labels have no legacy
equivalent and are dropped from the output.

With --from-sys the conversion runs the other way: a two-to-four-field
numeric version becomes a semantic version, with an unset third field
defaulting patch to zero. A version with a set revision field has no
semantic equivalent and is rejected.

# Examples

Convert to the legacy numeric form:
  verskit convert 1.2.3-rc.1

Convert back from the legacy form:
  verskit convert --from-sys 1.2
  verskit convert --from-sys 1.2.3

Rejected, revision has no equivalent:
  verskit convert --from-sys 1.2.3.4`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "from-sys",
				Usage: "Convert from the legacy numeric form to semantic instead",
			},
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() == 0 {
				return fmt.Errorf("nothing to convert: pass at least one version argument")
			}

			format, err := parseOutputFormat(cmd)
			if err != nil {
				return err
			}
			fromSys := cmd.Bool("from-sys")

			reports := make([]convertReport, 0, cmd.Args().Len())
			for _, s := range cmd.Args().Slice() {
				rep, err := convertOne(s, fromSys)
				if err != nil {
					return err
				}
				reports = append(reports, *rep)
			}

			slog.Debug("converted versions",
				slog.Int("count", len(reports)),
				slog.Bool("fromSys", fromSys),
			)

			ser := serializer.NewFileWriterOrStdout(format, cmd.String("output"))
			defer func() {
				if closer, ok := ser.(interface{ Close() error }); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}
			}()

			if len(reports) == 1 {
				return ser.Serialize(ctx, reports[0])
			}
			return ser.Serialize(ctx, reports)
		},
	}
}

// convertOne converts a single version string in the requested direction.
func convertOne(s string, fromSys bool) (*convertReport, error) {
	if fromSys {
		sv, err := sysver.Parse(s)
		if err != nil {
			return nil, fmt.Errorf("invalid system version %q: %w", s, err)
		}
		v, err := version.SemVerFromSys(sv)
		if err != nil {
			return nil, fmt.Errorf("cannot convert %q: %w", s, err)
		}
		return &convertReport{Input: s, Converted: v.String()}, nil
	}

	v, err := version.ParseSemVer(s)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version %q: %w", s, err)
	}
	return &convertReport{Input: s, Converted: v.Sys().String()}, nil
}
