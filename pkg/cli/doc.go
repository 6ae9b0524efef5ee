// Package cli implements the command-line interface for the verskit tool.
//
// # Overview
//
// The verskit CLI parses, compares, and transforms version strings in two
// grammars: semantic versions per SemVer 2.0.0 and bare numeric cores of one
// to three components. A legacy numeric form with two to four fields is
// supported through the convert command. It is designed for release
// tooling, CI pipelines, and anyone who needs precedence-correct version
// handling in scripts.
//
// # Commands
//
// inspect - Decompose versions into their fields:
//
//	verskit inspect 1.4.0-rc.1+build.5
//	verskit inspect --file versions.yaml --format json
//	verskit inspect --image ghcr.io/org/app:v1.4.0
//
// Parses each input and emits major/minor/patch, prerelease and build
// labels, and the canonical form. Inputs come from arguments, a manifest
// file, or a container image tag.
//
// compare - Order two versions by precedence:
//
//	verskit compare 1.2.3 1.3.0
//
// Prints -1, 0, or 1 plus a word (older/equal/newer) describing the first
// version relative to the second. Build metadata never affects the result.
//
// sort - Order many versions by precedence:
//
//	verskit sort --file versions.yaml [--reverse]
//
// Emits the original strings reordered lowest-first; the sort is stable.
//
// bump - Increment a version component:
//
//	verskit bump minor 1.2.3
//
// Levels are major, minor, and patch. Higher-level bumps zero the lower
// components; prerelease and build labels are kept.
//
// convert - Translate to and from the legacy numeric form:
//
//	verskit convert 1.2.3-rc.1
//	verskit convert --from-sys 1.2.3.4
//
// Legacy versions carry two to four numeric fields; a set fourth (revision)
// field has no semantic equivalent and is rejected.
//
// check - Validate a manifest in bulk:
//
//	verskit check --file versions.yaml [--fail-fast]
//
// Validates entries concurrently with a bounded worker count and exits
// non-zero when any entry is invalid.
//
// # Global Flags
//
//	--output, -o   Output file path (default: stdout)
//	--format, -t   Output format: yaml, json, table (default: yaml)
//	--kind, -k     Version grammar: semver, core (default: semver)
//	--help, -h     Show command help
//	--version, -v  Show version information
//
// # Output Formats
//
// YAML (default):
//   - Human-readable, preserves structure
//   - Suitable for version control
//
// JSON:
//   - Machine-parseable, compact
//   - Suitable for programmatic consumption
//
// Table:
//   - Flattened field/value representation
//   - Suitable for terminal viewing
//
// # Manifests
//
// Manifest files list version strings under a versions key, with an
// optional kind selecting the grammar for every entry:
//
//	kind: semver
//	versions:
//	  - 1.0.0
//	  - 1.2.0-rc.1
//	  - 2.0.0+build.5
//
// Manifests load from local paths or HTTP/HTTPS URLs in JSON or YAML,
// detected from the file extension.
//
// # Environment Variables
//
//	LOG_LEVEL  Set logging verbosity (debug, info, warn, error)
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, parse failure, invalid manifest entries)
//	2  Context canceled or timeout
//
// # Architecture
//
// The CLI uses the urfave/cli/v3 framework and delegates to specialized
// packages:
//   - pkg/version - Version parsing, comparison, and transformation
//   - pkg/sysver - Legacy numeric version form
//   - pkg/imageref - Container image reference parsing
//   - pkg/serializer - Output formatting
//   - pkg/logging - Structured logging
//
// Version information is embedded at build time using ldflags:
//
//	go build -ldflags="-X 'github.com/s33d1ing/verskit/pkg/cli.buildVersion=1.0.0'"
package cli
