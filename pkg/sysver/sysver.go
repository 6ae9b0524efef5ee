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

package sysver

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Unset marks the Build or Revision field as absent.
const Unset = -1

// Error types for system version construction and parsing failures
var (
	ErrEmpty         = errors.New("system version string is empty")
	ErrInvalidFormat = errors.New("system version must be major.minor[.build[.revision]]")
	ErrFieldCount    = errors.New("system version requires 2 to 4 fields")
	ErrNegativeField = errors.New("system version field cannot be negative")
)

// Version is the numeric version form used by hosting environments that
// predate semantic versioning: up to four integer fields, of which Major and
// Minor are required. Build and Revision hold Unset when absent. The type
// carries no textual labels; richer version kinds interoperate with it
// through the converters in pkg/version.
//
// The zero value has all four fields set to 0, which reads as "0.0.0.0".
// Use New or Parse to build values with unset trailing fields.
type Version struct {
	Major    int
	Minor    int
	Build    int
	Revision int
}

// New creates a Version from 2 to 4 non-negative integers, in
// major, minor, build, revision order. Omitted fields are left Unset.
func New(fields ...int) (*Version, error) {
	if len(fields) < 2 || len(fields) > 4 {
		return nil, fmt.Errorf("%w: got %d", ErrFieldCount, len(fields))
	}
	v := &Version{Build: Unset, Revision: Unset}
	for i, f := range fields {
		if f < 0 {
			return nil, fmt.Errorf("%w: %d", ErrNegativeField, f)
		}
		switch i {
		case 0:
			v.Major = f
		case 1:
			v.Minor = f
		case 2:
			v.Build = f
		case 3:
			v.Revision = f
		}
	}
	return v, nil
}

// Parse parses a dotted numeric string ("1.2", "1.2.3", "1.2.3.4") into a
// Version. Fields beyond minor are optional; negative or non-numeric fields
// and field counts outside 2-4 are rejected.
func Parse(s string) (*Version, error) {
	if strings.TrimSpace(s) == "" {
		return nil, ErrEmpty
	}

	parts := strings.Split(s, ".")
	if len(parts) < 2 || len(parts) > 4 {
		return nil, fmt.Errorf("%w: got %d fields", ErrFieldCount, len(parts))
	}

	fields := make([]int, 0, len(parts))
	for _, part := range parts {
		if strings.HasPrefix(part, "-") {
			if n, err := strconv.Atoi(part); err == nil {
				return nil, fmt.Errorf("%w: %d", ErrNegativeField, n)
			}
			return nil, fmt.Errorf("%w: field %q is not numeric", ErrInvalidFormat, part)
		}
		// ParseUint forbids sign prefixes, so "+2" is rejected along
		// with any other non-digit input
		n, err := strconv.ParseUint(part, 10, strconv.IntSize-1)
		if err != nil {
			return nil, fmt.Errorf("%w: field %q is not numeric", ErrInvalidFormat, part)
		}
		fields = append(fields, int(n))
	}
	return New(fields...)
}

// MustParse parses a system version string and panics if parsing fails.
// Only use this for hardcoded strings or in tests.
func MustParse(s string) *Version {
	v, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("MustParse: %v", err))
	}
	return v
}

// HasBuild reports whether the Build field is set.
func (v *Version) HasBuild() bool {
	return v.Build != Unset
}

// HasRevision reports whether the Revision field is set.
func (v *Version) HasRevision() bool {
	return v.Revision != Unset
}

// String renders the set fields in dotted form. Rendering stops at the first
// unset field, so a Version carrying only major and minor prints as "1.2".
func (v *Version) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%d.%d", v.Major, v.Minor)
	if !v.HasBuild() {
		return b.String()
	}
	fmt.Fprintf(&b, ".%d", v.Build)
	if v.HasRevision() {
		fmt.Fprintf(&b, ".%d", v.Revision)
	}
	return b.String()
}

// Equal returns true if all four fields match, including unset markers.
func (v *Version) Equal(other *Version) bool {
	if other == nil {
		return false
	}
	return v.Major == other.Major && v.Minor == other.Minor &&
		v.Build == other.Build && v.Revision == other.Revision
}

// Compare returns -1, 0, or 1 comparing field by field in
// major, minor, build, revision order. An unset field ranks below any set
// field. A nil other ranks lower.
func (v *Version) Compare(other *Version) int {
	if other == nil {
		return 1
	}
	if c := compareField(v.Major, other.Major); c != 0 {
		return c
	}
	if c := compareField(v.Minor, other.Minor); c != 0 {
		return c
	}
	if c := compareField(v.Build, other.Build); c != 0 {
		return c
	}
	return compareField(v.Revision, other.Revision)
}

// Compare is the null-tolerant form of Version.Compare: two nil versions are
// equal and nil ranks below any non-nil version.
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

func compareField(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}
	return 0
}

// MarshalText implements encoding.TextMarshaler using the dotted form.
func (v *Version) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *Version) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*v = *parsed
	return nil
}
