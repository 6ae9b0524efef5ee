/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/s33d1ing/verskit/pkg/logging"
	"github.com/s33d1ing/verskit/pkg/serializer"
)

const (
	name           = "verskit"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	buildVersion = versionDefault
	commit       = "unknown"
	date         = "unknown"
)

// Version kinds accepted by the --kind flag.
const (
	kindSemVer = "semver"
	kindCore   = "core"
)

// Flags shared across commands.
var (
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}

	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatYAML),
		Usage:   "Output format: yaml, json, or table",
	}

	kindFlag = &cli.StringFlag{
		Name:    "kind",
		Aliases: []string{"k"},
		Value:   kindSemVer,
		Usage:   "Version grammar: 'semver' (prerelease and build labels allowed) or 'core' (numeric components only)",
	}
)

// Command assembles the root verskit command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:                  name,
		Version:               fmt.Sprintf("%s (commit: %s, date: %s)", buildVersion, commit, date),
		EnableShellCompletion: true,
		ShellComplete:         commandLister,
		Usage:                 "Parse, compare, and transform version strings",
		Description: `verskit works with two version grammars: semantic versions per SemVer 2.0.0
(MAJOR.MINOR.PATCH with optional prerelease and build labels), and bare
numeric cores of one to three dot-separated components where missing
components normalize to zero. A third, legacy numeric form with two to four
fields is supported through the convert command.

# Examples

Decompose a version into its fields:
  verskit inspect 1.4.0-rc.1+build.5

Parse the version tag of a container image:
  verskit inspect --image ghcr.io/org/app:v1.4.0

Compare two versions by precedence:
  verskit compare 1.2.3 1.3.0

Sort a manifest of versions:
  verskit sort --file versions.yaml

Increment the minor component:
  verskit bump minor 1.2.3

Convert to the legacy numeric form and back:
  verskit convert 1.2.3-rc.1
  verskit convert --from-sys 1.2.3

Validate a manifest in bulk:
  verskit check --file versions.yaml --fail-fast`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level: debug, info, warn, or error",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, buildVersion, cmd.String("log-level"))
			return ctx, nil
		},
		Commands: []*cli.Command{
			inspectCmd(),
			compareCmd(),
			sortCmd(),
			bumpCmd(),
			convertCmd(),
			checkCmd(),
		},
	}
}

// Run executes the root command with signal-aware cancellation and maps
// failures to process exit codes. This is called by main.main().
func Run() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := Command().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// parseOutputFormat reads the shared format flag and rejects formats the
// serializer does not support.
func parseOutputFormat(cmd *cli.Command) (serializer.Format, error) {
	f := serializer.Format(cmd.String("format"))
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q (supported: %v)",
			cmd.String("format"), serializer.SupportedFormats())
	}
	return f, nil
}

// parseKind reads the shared kind flag.
func parseKind(cmd *cli.Command) (string, error) {
	kind := cmd.String("kind")
	if kind != kindSemVer && kind != kindCore {
		return "", fmt.Errorf("invalid --kind value: %q (must be %q or %q)", kind, kindSemVer, kindCore)
	}
	return kind, nil
}

// commandLister prints visible top-level command names for shell completion.
func commandLister(_ context.Context, cmd *cli.Command) {
	if cmd == nil {
		return
	}
	out := io.Writer(os.Stdout)
	if cmd.Writer != nil {
		out = cmd.Writer
	}
	for _, c := range cmd.Commands {
		if c == nil || c.Hidden {
			continue
		}
		fmt.Fprintln(out, c.Name)
	}
}
