/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/s33d1ing/verskit/pkg/version"
)

func bumpCmd() *cli.Command {
	return &cli.Command{
		Name:                  "bump",
		EnableShellCompletion: true,
		Usage:                 "Increment a version component",
		ArgsUsage:             "LEVEL VERSION",
		Description: `Increments the named component of a version and prints the result.
Level is one of major, minor, or patch. Bumping major zeroes minor and
patch; bumping minor zeroes patch. Prerelease and build labels are kept
as-is, so "1.2.3-rc.1" bumped at patch becomes "1.2.4-rc.1".

# Examples

Bump the patch component:
  verskit bump patch 1.2.3

Bump minor by more than one:
  verskit bump --by 3 minor 1.2.3

Bump a bare numeric version:
  verskit bump --kind core major 1.2`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "by",
				Aliases: []string{"n"},
				Value:   1,
				Usage:   "Amount to increment by (must be non-negative)",
			},
			kindFlag,
		},
		Action: func(_ context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 2 {
				return fmt.Errorf("bump requires LEVEL and VERSION arguments, got %d", cmd.Args().Len())
			}

			kind, err := parseKind(cmd)
			if err != nil {
				return err
			}

			level := strings.ToLower(cmd.Args().Get(0))
			out, err := bumpVersion(cmd.Args().Get(1), level, cmd.Int("by"), kind)
			if err != nil {
				return err
			}

			fmt.Println(out)
			return nil
		},
	}
}

// bumper is satisfied by both version kinds.
type bumper interface {
	BumpMajor(by int) error
	BumpMinor(by int) error
	BumpPatch(by int) error
}

// bumpVersion parses the input under the given grammar, applies the level
// increment, and returns the canonical result.
func bumpVersion(input, level string, by int, kind string) (string, error) {
	if kind == kindCore {
		v, err := version.ParseVersion(input)
		if err != nil {
			return "", fmt.Errorf("invalid core version %q: %w", input, err)
		}
		if err := applyBump(v, level, by); err != nil {
			return "", err
		}
		return v.String(), nil
	}

	v, err := version.ParseSemVer(input)
	if err != nil {
		return "", fmt.Errorf("invalid semantic version %q: %w", input, err)
	}
	if err := applyBump(v, level, by); err != nil {
		return "", err
	}
	return v.String(), nil
}

// applyBump dispatches the level to the matching bump operation.
func applyBump(v bumper, level string, by int) error {
	switch level {
	case "major":
		return v.BumpMajor(by)
	case "minor":
		return v.BumpMinor(by)
	case "patch":
		return v.BumpPatch(by)
	default:
		return fmt.Errorf("invalid bump level: %q (must be major, minor, or patch)", level)
	}
}
