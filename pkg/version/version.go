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
	"errors"
	"fmt"
	"hash/fnv"
	"strconv"
	"strings"
)

// Error types for version construction, parsing, formatting, conversion,
// and increment failures
var (
	ErrEmptyVersion      = errors.New("version string is empty")
	ErrInvalidFormat     = errors.New("version string does not match the version grammar")
	ErrTooManyComponents = errors.New("version has more than 3 components")
	ErrNegativeComponent = errors.New("version component cannot be negative")
	ErrNegativeIncrement = errors.New("increment amount cannot be negative")
	ErrInvalidFieldCount = errors.New("field count is out of range for this version kind")
	ErrInvalidPrerelease = errors.New("prerelease label does not match the identifier grammar")
	ErrInvalidBuild      = errors.New("build label does not match the identifier grammar")
	ErrNilVersion        = errors.New("version is nil")
	ErrRevisionSet       = errors.New("system version with a revision component has no core or semantic equivalent")
)

// Version is the reduced three-component version kind: major.minor.patch
// with no prerelease or build labels. Components are never negative. The
// fields are unexported so that every construction path validates; use
// NewVersion, ParseVersion, or FromSys.
//
// Values are immutable except through the Bump methods, which mutate the
// receiver in place and are not safe for concurrent use on a shared value.
type Version struct {
	major int
	minor int
	patch int
}

// NewVersion creates a Version from 1 to 3 non-negative integers in
// major, minor, patch order. Omitted components default to 0.
func NewVersion(major int, rest ...int) (*Version, error) {
	if len(rest) > 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooManyComponents, len(rest)+1)
	}
	v := &Version{major: major}
	if len(rest) > 0 {
		v.minor = rest[0]
	}
	if len(rest) > 1 {
		v.patch = rest[1]
	}
	if v.major < 0 || v.minor < 0 || v.patch < 0 {
		return nil, fmt.Errorf("%w: %d.%d.%d", ErrNegativeComponent, v.major, v.minor, v.patch)
	}
	return v, nil
}

// ParseVersion parses a version string against the core grammar.
// Supported forms: "1", "1.2", "1.2.3". Omitted minor and patch default
// to 0. The whole input must match: leading zeros, signs, a "v" prefix,
// whitespace, dangling separators, and extra components are all rejected.
// Returns ErrEmptyVersion for empty or whitespace-only input and
// ErrInvalidFormat for anything else that does not match.
func ParseVersion(s string) (*Version, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmptyVersion
	}

	match := coreRegex.FindStringSubmatch(s)
	if match == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	major, minor, patch, err := parseCoreMatch(match)
	if err != nil {
		return nil, err
	}
	return &Version{major: major, minor: minor, patch: patch}, nil
}

// TryParseVersion is the non-raising form of ParseVersion: it reports
// success via the boolean and returns nil on any failure.
func TryParseVersion(s string) (*Version, bool) {
	v, err := ParseVersion(s)
	if err != nil {
		return nil, false
	}
	return v, true
}

// MustParseVersion parses a version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests. For user input or
// runtime data, always use ParseVersion and handle errors explicitly.
func MustParseVersion(s string) *Version {
	v, err := ParseVersion(s)
	if err != nil {
		panic(fmt.Sprintf("MustParseVersion: %v", err))
	}
	return v
}

// Major returns the major component.
func (v *Version) Major() int { return v.major }

// Minor returns the minor component.
func (v *Version) Minor() int { return v.minor }

// Patch returns the patch component.
func (v *Version) Patch() int { return v.patch }

// String returns the full "major.minor.patch" representation.
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.major, v.minor, v.patch)
}

// Format renders the version with the requested number of leading fields:
// 1 for "major", 2 for "major.minor", 3 for "major.minor.patch".
// Any other count fails with ErrInvalidFieldCount.
func (v *Version) Format(fields int) (string, error) {
	switch fields {
	case 1:
		return strconv.Itoa(v.major), nil
	case 2:
		return fmt.Sprintf("%d.%d", v.major, v.minor), nil
	case 3:
		return v.String(), nil
	default:
		return "", fmt.Errorf("%w: %d (core version accepts 1 to 3)", ErrInvalidFieldCount, fields)
	}
}

// Compare returns -1, 0, or 1 comparing component by component in
// major, minor, patch order. A nil other ranks lower.
func (v *Version) Compare(other *Version) int {
	if other == nil {
		return 1
	}
	if c := compareInt(v.major, other.major); c != 0 {
		return c
	}
	if c := compareInt(v.minor, other.minor); c != 0 {
		return c
	}
	return compareInt(v.patch, other.patch)
}

// Equal returns true if all three components match. A nil other is never
// equal.
func (v *Version) Equal(other *Version) bool {
	if other == nil {
		return false
	}
	return v.major == other.major && v.minor == other.minor && v.patch == other.patch
}

// Compare is the null-tolerant form of Version.Compare: two nil versions
// are equal and nil ranks below any non-nil version.
func Compare(a, b *Version) int {
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

// Equal is the null-tolerant form of Version.Equal, consistent with
// Compare: two nil versions are equal.
func Equal(a, b *Version) bool {
	return Compare(a, b) == 0
}

// BumpMajor increases major by the given non-negative amount and zeroes
// minor and patch.
func (v *Version) BumpMajor(by int) error {
	if by < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIncrement, by)
	}
	v.major += by
	v.minor = 0
	v.patch = 0
	return nil
}

// BumpMinor increases minor by the given non-negative amount and zeroes
// patch.
func (v *Version) BumpMinor(by int) error {
	if by < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIncrement, by)
	}
	v.minor += by
	v.patch = 0
	return nil
}

// BumpPatch increases patch by the given non-negative amount.
func (v *Version) BumpPatch(by int) error {
	if by < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeIncrement, by)
	}
	v.patch += by
	return nil
}

// Hash returns a hash of the full string representation. Versions that are
// Equal hash identically.
func (v *Version) Hash() uint64 {
	h := fnv.New64a()
	h.Write([]byte(v.String()))
	return h.Sum64()
}

// SemVer widens the version to the semantic kind with no prerelease or
// build labels.
func (v *Version) SemVer() *SemVer {
	return &SemVer{core: *v}
}

// MarshalText implements encoding.TextMarshaler using the full
// "major.minor.patch" form.
func (v *Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := ParseVersion(string(text))
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}
