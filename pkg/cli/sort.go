/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"github.com/urfave/cli/v3"

	"github.com/s33d1ing/verskit/pkg/serializer"
	"github.com/s33d1ing/verskit/pkg/version"
)

// sortCmdOptions holds parsed options for the sort command.
type sortCmdOptions struct {
	versions []string
	filePath string
	reverse  bool
	format   serializer.Format
	output   string
}

// parseSortCmdOptions parses and validates command options.
func parseSortCmdOptions(cmd *cli.Command) (*sortCmdOptions, error) {
	opts := &sortCmdOptions{
		versions: cmd.Args().Slice(),
		filePath: cmd.String("file"),
		reverse:  cmd.Bool("reverse"),
		output:   cmd.String("output"),
	}

	if len(opts.versions) > 0 && opts.filePath != "" {
		return nil, fmt.Errorf("version arguments and --file are mutually exclusive")
	}
	if len(opts.versions) == 0 && opts.filePath == "" {
		return nil, fmt.Errorf("nothing to sort: pass version arguments or --file")
	}

	var err error
	opts.format, err = parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}

	return opts, nil
}

func sortCmd() *cli.Command {
	return &cli.Command{
		Name:                  "sort",
		EnableShellCompletion: true,
		Usage:                 "Sort versions by precedence",
		ArgsUsage:             "[VERSION...]",
		Description: `Sorts the inputs by precedence, lowest first, and emits the original
strings in the new order. Every entry must parse under the selected
grammar; a single bad entry fails the whole run. The sort is stable, so
versions that compare equal (for example ones differing only in build
metadata) keep their input order.

# Examples

Sort positional arguments:
  verskit sort 1.10.0 1.2.0 1.0.0-rc.1

Sort a manifest, newest first:
  verskit sort --file versions.yaml --reverse

Sort bare numeric versions:
  verskit sort --kind core 1.10 1.2 1`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage: `Path/URI to a version manifest to sort.
	Supports: file paths and HTTP/HTTPS URLs.`,
			},
			&cli.BoolFlag{
				Name:    "reverse",
				Aliases: []string{"r"},
				Usage:   "Sort highest precedence first",
			},
			kindFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseSortCmdOptions(cmd)
			if err != nil {
				return err
			}

			versions := opts.versions
			var manifest *Manifest
			if opts.filePath != "" {
				manifest, err = loadManifest(opts.filePath)
				if err != nil {
					return err
				}
				versions = manifest.Versions
			}

			kind, err := resolveKind(cmd, manifest)
			if err != nil {
				return err
			}

			sorted, err := sortVersions(versions, kind, opts.reverse)
			if err != nil {
				return err
			}

			slog.Debug("sorted versions",
				slog.Int("count", len(sorted)),
				slog.String("kind", kind),
				slog.Bool("reverse", opts.reverse),
			)

			ser := serializer.NewFileWriterOrStdout(opts.format, opts.output)
			defer func() {
				if closer, ok := ser.(interface{ Close() error }); ok {
					if err := closer.Close(); err != nil {
						slog.Warn("failed to close serializer", "error", err)
					}
				}
			}()

			return ser.Serialize(ctx, sorted)
		},
	}
}

// sortVersions orders the inputs by precedence and returns the original
// strings reordered. Parsing every entry up front keeps the comparator
// total; reverse negates it rather than flipping afterwards so equal
// entries keep their input order either way.
func sortVersions(versions []string, kind string, reverse bool) ([]string, error) {
	var cmp func(i, j int) int

	if kind == kindCore {
		parsed := make([]*version.Version, len(versions))
		for i, s := range versions {
			v, err := version.ParseVersion(s)
			if err != nil {
				return nil, fmt.Errorf("invalid core version %q: %w", s, err)
			}
			parsed[i] = v
		}
		cmp = func(i, j int) int { return parsed[i].Compare(parsed[j]) }
	} else {
		parsed := make([]*version.SemVer, len(versions))
		for i, s := range versions {
			v, err := version.ParseSemVer(s)
			if err != nil {
				return nil, fmt.Errorf("invalid semantic version %q: %w", s, err)
			}
			parsed[i] = v
		}
		cmp = func(i, j int) int { return parsed[i].Compare(parsed[j]) }
	}

	if reverse {
		forward := cmp
		cmp = func(i, j int) int { return forward(j, i) }
	}

	idx := make([]int, len(versions))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int { return cmp(i, j) })

	out := make([]string, len(versions))
	for n, i := range idx {
		out[n] = versions[i]
	}
	return out, nil
}
