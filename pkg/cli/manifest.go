/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/s33d1ing/verskit/pkg/serializer"
)

// Manifest is a named list of version strings processed as a unit. The kind
// field selects the grammar for every entry; an explicit --kind flag takes
// precedence over it.
type Manifest struct {
	Kind     string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Versions []string `json:"versions" yaml:"versions"`
}

// loadManifest reads a manifest from a local path or HTTP(S) URL, with the
// format detected from the file extension.
func loadManifest(path string) (*Manifest, error) {
	m, err := serializer.FromFile[Manifest](path)
	if err != nil {
		return nil, fmt.Errorf("failed to load manifest from %q: %w", path, err)
	}
	if len(m.Versions) == 0 {
		return nil, fmt.Errorf("manifest %q contains no versions", path)
	}
	return m, nil
}

// resolveKind picks the version grammar for a manifest-driven command: an
// explicit --kind flag wins, then the manifest kind field, then the semver
// default.
func resolveKind(cmd *cli.Command, m *Manifest) (string, error) {
	if m != nil && m.Kind != "" && !cmd.IsSet("kind") {
		if m.Kind != kindSemVer && m.Kind != kindCore {
			return "", fmt.Errorf("invalid manifest kind: %q (must be %q or %q)", m.Kind, kindSemVer, kindCore)
		}
		return m.Kind, nil
	}
	return parseKind(cmd)
}
