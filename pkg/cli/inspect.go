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

	"github.com/s33d1ing/verskit/pkg/imageref"
	"github.com/s33d1ing/verskit/pkg/serializer"
	"github.com/s33d1ing/verskit/pkg/version"
)

// inspectReport is the decomposition of a single version string.
type inspectReport struct {
	Input      string `json:"input" yaml:"input"`
	Kind       string `json:"kind" yaml:"kind"`
	Canonical  string `json:"canonical" yaml:"canonical"`
	Major      int    `json:"major" yaml:"major"`
	Minor      int    `json:"minor" yaml:"minor"`
	Patch      int    `json:"patch" yaml:"patch"`
	Prerelease string `json:"prerelease,omitempty" yaml:"prerelease,omitempty"`
	Build      string `json:"build,omitempty" yaml:"build,omitempty"`
	Image      string `json:"image,omitempty" yaml:"image,omitempty"`
}

// inspectCmdOptions holds parsed options for the inspect command.
type inspectCmdOptions struct {
	versions []string
	filePath string
	imageRef string
	kind     string
	format   serializer.Format
	output   string
}

// parseInspectCmdOptions parses and validates command options.
func parseInspectCmdOptions(cmd *cli.Command) (*inspectCmdOptions, error) {
	opts := &inspectCmdOptions{
		versions: cmd.Args().Slice(),
		filePath: cmd.String("file"),
		imageRef: cmd.String("image"),
		output:   cmd.String("output"),
	}

	sources := 0
	if len(opts.versions) > 0 {
		sources++
	}
	if opts.filePath != "" {
		sources++
	}
	if opts.imageRef != "" {
		sources++
	}
	if sources == 0 {
		return nil, fmt.Errorf("nothing to inspect: pass version arguments, --file, or --image")
	}
	if sources > 1 {
		return nil, fmt.Errorf("version arguments, --file, and --image are mutually exclusive")
	}

	var err error
	opts.format, err = parseOutputFormat(cmd)
	if err != nil {
		return nil, err
	}
	opts.kind, err = parseKind(cmd)
	if err != nil {
		return nil, err
	}

	return opts, nil
}

func inspectCmd() *cli.Command {
	return &cli.Command{
		Name:                  "inspect",
		EnableShellCompletion: true,
		Usage:                 "Parse versions and show their decomposed fields",
		ArgsUsage:             "[VERSION...]",
		Description: `Parses each input under the selected grammar and emits the decomposed
fields together with the canonical form. Inputs come from positional
arguments, a version manifest (--file), or a container image reference
(--image, which parses the image tag after stripping a leading "v").

Partial core inputs such as "1" or "1.2" normalize missing components
to zero, so "1.2" and "1.2.0" produce the same canonical form.

# Examples

Inspect a semantic version:
  verskit inspect 1.4.0-rc.1+build.5

Inspect bare numeric versions:
  verskit inspect --kind core 1.2 4

Inspect every version in a manifest as JSON:
  verskit inspect --file versions.yaml --format json

Inspect the version tag of a container image:
  verskit inspect --image ghcr.io/org/app:v1.4.0`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Usage: `Path/URI to a version manifest to inspect.
	Supports: file paths and HTTP/HTTPS URLs.`,
			},
			&cli.StringFlag{
				Name:  "image",
				Usage: "Container image reference whose tag to inspect (e.g., ghcr.io/org/app:v1.4.0)",
			},
			kindFlag,
			outputFlag,
			formatFlag,
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseInspectCmdOptions(cmd)
			if err != nil {
				return err
			}

			var reports []inspectReport

			switch {
			case opts.filePath != "":
				m, err := loadManifest(opts.filePath)
				if err != nil {
					return err
				}
				kind, err := resolveKind(cmd, m)
				if err != nil {
					return err
				}
				reports = make([]inspectReport, 0, len(m.Versions))
				for _, s := range m.Versions {
					rep, err := inspectOne(s, kind)
					if err != nil {
						return err
					}
					reports = append(reports, *rep)
				}

			case opts.imageRef != "":
				rep, err := inspectImage(opts.imageRef)
				if err != nil {
					return err
				}
				reports = []inspectReport{*rep}

			default:
				reports = make([]inspectReport, 0, len(opts.versions))
				for _, s := range opts.versions {
					rep, err := inspectOne(s, opts.kind)
					if err != nil {
						return err
					}
					reports = append(reports, *rep)
				}
			}

			slog.Debug("inspected versions", slog.Int("count", len(reports)))

			ser := serializer.NewFileWriterOrStdout(opts.format, opts.output)
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

// inspectOne parses a single version string under the given grammar and
// decomposes it into a report.
func inspectOne(s, kind string) (*inspectReport, error) {
	if kind == kindCore {
		v, err := version.ParseVersion(s)
		if err != nil {
			return nil, fmt.Errorf("invalid core version %q: %w", s, err)
		}
		return &inspectReport{
			Input:     s,
			Kind:      kindCore,
			Canonical: v.String(),
			Major:     v.Major(),
			Minor:     v.Minor(),
			Patch:     v.Patch(),
		}, nil
	}

	v, err := version.ParseSemVer(s)
	if err != nil {
		return nil, fmt.Errorf("invalid semantic version %q: %w", s, err)
	}
	return &inspectReport{
		Input:      s,
		Kind:       kindSemVer,
		Canonical:  v.String(),
		Major:      v.Major(),
		Minor:      v.Minor(),
		Patch:      v.Patch(),
		Prerelease: v.Prerelease(),
		Build:      v.Build(),
	}, nil
}

// inspectImage parses an image reference and decomposes the version carried
// by its tag. The tag itself remains the reported input.
func inspectImage(ref string) (*inspectReport, error) {
	parsed, err := imageref.Parse(ref)
	if err != nil {
		return nil, err
	}

	v, err := parsed.TagVersion()
	if err != nil {
		return nil, err
	}

	return &inspectReport{
		Input:      parsed.Tag,
		Kind:       kindSemVer,
		Canonical:  v.String(),
		Major:      v.Major(),
		Minor:      v.Minor(),
		Patch:      v.Patch(),
		Prerelease: v.Prerelease(),
		Build:      v.Build(),
		Image:      parsed.String(),
	}, nil
}
