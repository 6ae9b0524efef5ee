/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/s33d1ing/verskit/pkg/version"
)

func compareCmd() *cli.Command {
	return &cli.Command{
		Name:                  "compare",
		EnableShellCompletion: true,
		Usage:                 "Compare two versions by precedence",
		ArgsUsage:             "A B",
		Description: `Compares two versions under the selected grammar and prints the ordering
of A relative to B: -1 and "older" when A precedes B, 0 and "equal" when
they rank the same, 1 and "newer" when A follows B.

Precedence follows SemVer 2.0.0: numeric components compare numerically,
any prerelease ranks below the matching release, and build metadata never
affects the result, so "1.0.0+build1" and "1.0.0+build2" compare equal.

# Examples

Compare two releases:
  verskit compare 1.2.3 1.3.0

Prerelease sorts below its release:
  verskit compare 1.0.0-rc.1 1.0.0

Compare bare numeric versions:
  verskit compare --kind core 1.2 1.10`,
		Flags: []cli.Flag{
			kindFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("compare requires exactly 2 arguments, got %d", cmd.Args().Len())
			}

			kind, err := parseKind(cmd)
			if err != nil {
				return err
			}

			c, err := compareVersions(cmd.Args().Get(0), cmd.Args().Get(1), kind)
			if err != nil {
				return err
			}

			fmt.Printf("%d %s\n", c, comparisonWord(c))
			return nil
		},
	}
}

// compareVersions parses both inputs under the given grammar and returns
// the precedence of a relative to b.
func compareVersions(a, b, kind string) (int, error) {
	if kind == kindCore {
		va, err := version.ParseVersion(a)
		if err != nil {
			return 0, fmt.Errorf("invalid core version %q: %w", a, err)
		}
		vb, err := version.ParseVersion(b)
		if err != nil {
			return 0, fmt.Errorf("invalid core version %q: %w", b, err)
		}
		return va.Compare(vb), nil
	}

	va, err := version.ParseSemVer(a)
	if err != nil {
		return 0, fmt.Errorf("invalid semantic version %q: %w", a, err)
	}
	vb, err := version.ParseSemVer(b)
	if err != nil {
		return 0, fmt.Errorf("invalid semantic version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// comparisonWord names the relation of a to b for human-readable output.
func comparisonWord(c int) string {
	switch {
	case c < 0:
		return "older"
	case c > 0:
		return "newer"
	default:
		return "equal"
	}
}
