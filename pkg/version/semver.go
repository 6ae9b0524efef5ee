// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package version

import (
	"fmt"
	"hash/fnv"
	"math/big"
	"strings"
)

// SemVer is the full Semantic Versioning 2.0.0 kind: a numeric core plus
// optional prerelease and build-metadata labels. It embeds the core by
// composition and delegates the numeric operations to it.
//
// An empty label string means the label is absent; labels are never stored
// empty or whitespace-only. Build metadata participates in formatting only,
// never in ordering or equality.
type SemVer struct {
	core       Version
	prerelease string
	build      string
}

// SemVerOption configures optional labels on NewSemVer.
type SemVerOption func(*SemVer)

// WithPrerelease sets the prerelease label. An empty string leaves the
// label absent; a non-empty value must match the prerelease identifier
// grammar or NewSemVer fails.
func WithPrerelease(label string) SemVerOption {
	return func(v *SemVer) { v.prerelease = label }
}

// WithBuild sets the build-metadata label. An empty string leaves the
// label absent; a non-empty value must match the build identifier grammar
// or NewSemVer fails.
func WithBuild(label string) SemVerOption {
	return func(v *SemVer) { v.build = label }
}

// NewSemVer creates a SemVer from non-negative major, minor, and patch
// components and optional labels.
func NewSemVer(major, minor, patch int, opts ...SemVerOption) (*SemVer, error) {
	if major < 0 || minor < 0 || patch < 0 {
		return nil, fmt.Errorf("%w: %d.%d.%d", ErrNegativeComponent, major, minor, patch)
	}
	v := &SemVer{core: Version{major: major, minor: minor, patch: patch}}
	for _, opt := range opts {
		opt(v)
	}
	if v.prerelease != "" && !validPrereleaseLabel(v.prerelease) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPrerelease, v.prerelease)
	}
	if v.build != "" && !validBuildLabel(v.build) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidBuild, v.build)
	}
	return v, nil
}

// ParseSemVer parses a version string against the semantic grammar:
// "major[.minor[.patch]][-prerelease][+build]". Omitted minor and patch
// default to 0. The whole input must match; see ParseVersion for the
// numeric component rules. Prerelease identifiers may not be leading-zero
// numerics; build identifiers are unrestricted alphanumeric/hyphen tokens.
func ParseSemVer(s string) (*SemVer, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyVersion
	}

	match := semverRegex.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	major, minor, patch, err := parseCoreMatch(match)
	if err != nil {
		return nil, err
	}
	return &SemVer{
		core:       Version{major: major, minor: minor, patch: patch},
		prerelease: match[4],
		build:      match[5],
	}, nil
}

// TryParseSemVer is the non-raising form of ParseSemVer: it reports
// success via the boolean and returns nil on any failure.
func TryParseSemVer(s string) (*SemVer, bool) {
	v, err := ParseSemVer(s)
	if err != nil {
		return nil, false
	}
	return v, true
}

// MustParseSemVer parses a semantic version string and panics if parsing
// fails. Only use this for hardcoded strings or in tests.
func MustParseSemVer(s string) *SemVer {
	v, err := ParseSemVer(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseSemVer: %v", err))
	}
	return v
}

// Major returns the major component.
func (v *SemVer) Major() int { return v.core.major }

// Minor returns the minor component.
func (v *SemVer) Minor() int { return v.core.minor }

// Patch returns the patch component.
func (v *SemVer) Patch() int { return v.core.patch }

// Prerelease returns the prerelease label, or "" if absent.
func (v *SemVer) Prerelease() string { return v.prerelease }

// Build returns the build-metadata label, or "" if absent.
func (v *SemVer) Build() string { return v.build }

// IsPrerelease reports whether a prerelease label is present.
func (v *SemVer) IsPrerelease() bool { return v.prerelease != "" }

// Core returns a copy of the numeric major.minor.patch triple as the
// reduced version kind.
func (v *SemVer) Core() *Version {
	c := v.core
	return &c
}

// String returns the full representation including any prerelease and
// build labels.
func (v *SemVer) String() string {
	s := v.core.String()
	if v.prerelease != "" {
		s += "-" + v.prerelease
	}
	if v.build != "" {
		s += "+" + v.build
	}
	return s
}

// Format renders the version with the requested number of fields. Counts
// 1 to 3 behave like the core kind. Count 4 appends "-prerelease" only if
// a prerelease label is present; count 5 additionally appends "+build"
// only if a build label is present. Any other count fails with
// ErrInvalidFieldCount.
func (v *SemVer) Format(fields int) (string, error) {
	switch fields {
	case 1, 2, 3:
		return v.core.Format(fields)
	case 4, 5:
		s := v.core.String()
		if v.prerelease != "" {
			s += "-" + v.prerelease
		}
		if fields == 5 && v.build != "" {
			s += "+" + v.build
		}
		return s, nil
	default:
		return "", fmt.Errorf("%w: %d (semantic version accepts 1 to 5)", ErrInvalidFieldCount, fields)
	}
}

// Compare returns -1, 0, or 1 per Semantic Versioning precedence:
// major, minor, patch numerically, then prerelease labels. A release
// (no prerelease label) outranks any prerelease of the same triple; two
// prerelease labels compare identifier by identifier (numeric identifiers
// numerically and below alphanumeric ones, alphanumeric ones byte-wise);
// if one identifier list is a prefix of the other, the longer list wins.
// Build metadata never participates. A nil other ranks lower.
func (v *SemVer) Compare(other *SemVer) int {
	if other == nil {
		return 1
	}
	if c := v.core.Compare(&other.core); c != 0 {
		return c
	}
	return comparePrerelease(v.prerelease, other.prerelease)
}

// Equal returns true if the numeric components and prerelease labels
// match exactly. Build metadata is excluded, so "1.0.0+linux" and
// "1.0.0+windows" are equal. A nil other is never equal.
func (v *SemVer) Equal(other *SemVer) bool {
	if other == nil {
		return false
	}
	return v.core == other.core && v.prerelease == other.prerelease
}

// CompareSemVer is the null-tolerant form of SemVer.Compare: two nil
// versions are equal and nil ranks below any non-nil version.
func CompareSemVer(a, b *SemVer) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return a.Compare(b)
}

// EqualSemVer is the null-tolerant form of SemVer.Equal, consistent with
// CompareSemVer: two nil versions are equal.
func EqualSemVer(a, b *SemVer) bool {
	return CompareSemVer(a, b) == 0
}

// BumpMajor increases major by the given non-negative amount and zeroes
// minor and patch. Labels are not touched.
func (v *SemVer) BumpMajor(by int) error { return v.core.BumpMajor(by) }

// BumpMinor increases minor by the given non-negative amount and zeroes
// patch. Labels are not touched.
func (v *SemVer) BumpMinor(by int) error { return v.core.BumpMinor(by) }

// BumpPatch increases patch by the given non-negative amount. Labels are
// not touched.
func (v *SemVer) BumpPatch(by int) error { return v.core.BumpPatch(by) }

// Hash returns a hash of the equality-relevant representation (numeric
// components and prerelease label, build excluded). Versions that are
// Equal hash identically.
func (v *SemVer) Hash() uint64 {
	h := fnv.New64a()
	s := v.core.String()
	if v.prerelease != "" {
		s += "-" + v.prerelease
	}
	h.Write([]byte(s))
	return h.Sum64()
}

// MarshalText implements encoding.TextMarshaler using the full form
// including labels.
func (v *SemVer) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *SemVer) UnmarshalText(text []byte) error {
	parsed, err := ParseSemVer(string(text))
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

// comparePrerelease orders two prerelease labels. The empty label (a
// release) outranks any non-empty label.
func comparePrerelease(a, b string) int {
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return 1
	case b == "":
		return -1
	}

	aIDs := strings.Split(a, ".")
	bIDs := strings.Split(b, ".")
	for i := 0; i < len(aIDs) && i < len(bIDs); i++ {
		if c := comparePrereleaseID(aIDs[i], bIDs[i]); c != 0 {
			return c
		}
	}

	// All shared identifiers equal: the longer list wins.
	return compareInt(len(aIDs), len(bIDs))
}

// comparePrereleaseID orders two prerelease identifiers. Purely numeric
// identifiers compare numerically and always rank below alphanumeric
// ones; alphanumeric identifiers compare byte-wise.
func comparePrereleaseID(a, b string) int {
	aNum, aOK := numericIdentifier(a)
	bNum, bOK := numericIdentifier(b)
	switch {
	case aOK && bOK:
		return aNum.Cmp(bNum)
	case aOK:
		return -1
	case bOK:
		return 1
	}
	return strings.Compare(a, b)
}

// numericIdentifier converts an all-digit identifier to an integer of
// arbitrary size. Identifiers like "-1" or "1a" contain non-digits and are
// not numeric.
func numericIdentifier(s string) (*big.Int, bool) {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return nil, false
		}
	}
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, false
	}
	return n, true
}
