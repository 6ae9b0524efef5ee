package version

import (
	"errors"
	"fmt"
	"testing"
)

func TestParseSemVer(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		major         int
		minor         int
		patch         int
		prerelease    string
		build         string
		expectedError bool
	}{
		{
			name:  "plain triple",
			input: "1.2.3",
			major: 1, minor: 2, patch: 3,
			expectedError: false,
		},
		{
			name:  "major only",
			input: "1",
			major: 1, minor: 0, patch: 0,
			expectedError: false,
		},
		{
			name:  "major.minor",
			input: "1.2",
			major: 1, minor: 2, patch: 0,
			expectedError: false,
		},
		{
			name:  "with prerelease",
			input: "1.2.3-alpha.1",
			major: 1, minor: 2, patch: 3,
			prerelease:    "alpha.1",
			expectedError: false,
		},
		{
			name:  "with build",
			input: "1.2.3+build.5",
			major: 1, minor: 2, patch: 3,
			build:         "build.5",
			expectedError: false,
		},
		{
			name:  "with prerelease and build",
			input: "1.2.3-rc.1+build.5",
			major: 1, minor: 2, patch: 3,
			prerelease:    "rc.1",
			build:         "build.5",
			expectedError: false,
		},
		{
			name:  "prerelease on partial triple",
			input: "1-alpha",
			major: 1, minor: 0, patch: 0,
			prerelease:    "alpha",
			expectedError: false,
		},
		{
			name:  "hyphenated prerelease identifier",
			input: "1.0.0-x-y-z.--",
			major: 1, minor: 0, patch: 0,
			prerelease:    "x-y-z.--",
			expectedError: false,
		},
		{
			name:  "leading zero allowed in alphanumeric identifier",
			input: "1.0.0-0a.01b",
			major: 1, minor: 0, patch: 0,
			prerelease:    "0a.01b",
			expectedError: false,
		},
		{
			name:  "leading zeros allowed in build identifiers",
			input: "1.0.0+001.02",
			major: 1, minor: 0, patch: 0,
			build:         "001.02",
			expectedError: false,
		},
		{
			name:          "invalid - empty string",
			input:         "",
			expectedError: true,
		},
		{
			name:          "invalid - leading zero numeric prerelease identifier",
			input:         "1.0.0-01",
			expectedError: true,
		},
		{
			name:          "invalid - empty prerelease identifier",
			input:         "1.0.0-alpha..1",
			expectedError: true,
		},
		{
			name:          "invalid - dangling hyphen",
			input:         "1.0.0-",
			expectedError: true,
		},
		{
			name:          "invalid - dangling plus",
			input:         "1.0.0+",
			expectedError: true,
		},
		{
			name:          "invalid - dangling dot in prerelease",
			input:         "1.0.0-rc.",
			expectedError: true,
		},
		{
			name:          "invalid - underscore in prerelease",
			input:         "1.0.0-rc_1",
			expectedError: true,
		},
		{
			name:          "invalid - empty build identifier",
			input:         "1.0.0+a..b",
			expectedError: true,
		},
		{
			name:          "invalid - v prefix",
			input:         "v1.0.0",
			expectedError: true,
		},
		{
			name:          "invalid - four numeric components",
			input:         "1.2.3.4",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseSemVer(tt.input)
			if tt.expectedError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if result.Major() != tt.major {
				t.Errorf("Major: got %d, want %d", result.Major(), tt.major)
			}
			if result.Minor() != tt.minor {
				t.Errorf("Minor: got %d, want %d", result.Minor(), tt.minor)
			}
			if result.Patch() != tt.patch {
				t.Errorf("Patch: got %d, want %d", result.Patch(), tt.patch)
			}
			if result.Prerelease() != tt.prerelease {
				t.Errorf("Prerelease: got %q, want %q", result.Prerelease(), tt.prerelease)
			}
			if result.Build() != tt.build {
				t.Errorf("Build: got %q, want %q", result.Build(), tt.build)
			}
		})
	}
}

func TestParseSemVerErrors(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectedErr error
	}{
		{
			name:        "empty string",
			input:       "",
			expectedErr: ErrEmptyVersion,
		},
		{
			name:        "whitespace only",
			input:       "  ",
			expectedErr: ErrEmptyVersion,
		},
		{
			name:        "dangling hyphen",
			input:       "1.0.0-",
			expectedErr: ErrInvalidFormat,
		},
		{
			name:        "leading zero numeric identifier",
			input:       "1.0.0-01",
			expectedErr: ErrInvalidFormat,
		},
		{
			name:        "negative component",
			input:       "1.-1.0",
			expectedErr: ErrInvalidFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSemVer(tt.input)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("expected error %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestTryParseSemVer(t *testing.T) {
	tests := []struct {
		name       string
		input      string
		expectedOK bool
	}{
		{
			name:       "valid with labels",
			input:      "1.2.3-rc.1+build.5",
			expectedOK: true,
		},
		{
			name:       "invalid dangling plus",
			input:      "1.2.3+",
			expectedOK: false,
		},
		{
			name:       "invalid empty",
			input:      "",
			expectedOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, ok := TryParseSemVer(tt.input)
			if ok != tt.expectedOK {
				t.Errorf("ok: got %v, want %v", ok, tt.expectedOK)
			}
			if !ok && v != nil {
				t.Errorf("expected nil version on failure, got %v", v)
			}
		})
	}
}

func TestNewSemVer(t *testing.T) {
	tests := []struct {
		name          string
		major         int
		minor         int
		patch         int
		opts          []SemVerOption
		expected      string
		expectedError bool
	}{
		{
			name:  "plain triple",
			major: 1, minor: 2, patch: 3,
			expected:      "1.2.3",
			expectedError: false,
		},
		{
			name:  "with prerelease",
			major: 1, minor: 0, patch: 0,
			opts:          []SemVerOption{WithPrerelease("alpha.1")},
			expected:      "1.0.0-alpha.1",
			expectedError: false,
		},
		{
			name:  "with prerelease and build",
			major: 1, minor: 0, patch: 0,
			opts:          []SemVerOption{WithPrerelease("rc.1"), WithBuild("build.5")},
			expected:      "1.0.0-rc.1+build.5",
			expectedError: false,
		},
		{
			name:  "empty labels mean absent",
			major: 1, minor: 0, patch: 0,
			opts:          []SemVerOption{WithPrerelease(""), WithBuild("")},
			expected:      "1.0.0",
			expectedError: false,
		},
		{
			name:  "invalid - negative component",
			major: 1, minor: -2, patch: 3,
			expectedError: true,
		},
		{
			name:  "invalid - leading zero numeric prerelease",
			major: 1, minor: 0, patch: 0,
			opts:          []SemVerOption{WithPrerelease("01")},
			expectedError: true,
		},
		{
			name:  "invalid - whitespace prerelease",
			major: 1, minor: 0, patch: 0,
			opts:          []SemVerOption{WithPrerelease(" ")},
			expectedError: true,
		},
		{
			name:  "invalid - underscore in build",
			major: 1, minor: 0, patch: 0,
			opts:          []SemVerOption{WithBuild("a_b")},
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := NewSemVer(tt.major, tt.minor, tt.patch, tt.opts...)
			if tt.expectedError {
				if err == nil {
					t.Errorf("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if result.String() != tt.expected {
				t.Errorf("got %q, want %q", result.String(), tt.expected)
			}
		})
	}
}

func TestNewSemVerErrors(t *testing.T) {
	if _, err := NewSemVer(-1, 0, 0); !errors.Is(err, ErrNegativeComponent) {
		t.Errorf("expected ErrNegativeComponent, got %v", err)
	}
	if _, err := NewSemVer(1, 0, 0, WithPrerelease("01")); !errors.Is(err, ErrInvalidPrerelease) {
		t.Errorf("expected ErrInvalidPrerelease, got %v", err)
	}
	if _, err := NewSemVer(1, 0, 0, WithBuild("+")); !errors.Is(err, ErrInvalidBuild) {
		t.Errorf("expected ErrInvalidBuild, got %v", err)
	}
}

func TestSemVerFormat(t *testing.T) {
	tests := []struct {
		name          string
		version       string
		fields        int
		expected      string
		expectedError bool
	}{
		{
			name:    "one field",
			version: "1.2.3-rc.1+build.5",
			fields:  1, expected: "1",
		},
		{
			name:    "two fields",
			version: "1.2.3-rc.1+build.5",
			fields:  2, expected: "1.2",
		},
		{
			name:    "three fields excludes labels",
			version: "1.2.3-rc.1+build.5",
			fields:  3, expected: "1.2.3",
		},
		{
			name:    "four fields appends prerelease",
			version: "1.2.3-rc.1+build.5",
			fields:  4, expected: "1.2.3-rc.1",
		},
		{
			name:    "five fields appends build",
			version: "1.2.3-rc.1+build.5",
			fields:  5, expected: "1.2.3-rc.1+build.5",
		},
		{
			name:    "four fields without prerelease appends nothing",
			version: "1.2.3+build.5",
			fields:  4, expected: "1.2.3",
		},
		{
			name:    "five fields without build appends nothing",
			version: "1.2.3-rc.1",
			fields:  5, expected: "1.2.3-rc.1",
		},
		{
			name:    "five fields plain triple",
			version: "1.2.3",
			fields:  5, expected: "1.2.3",
		},
		{
			name:    "invalid - zero fields",
			version: "1.2.3",
			fields:  0, expectedError: true,
		},
		{
			name:    "invalid - six fields",
			version: "1.2.3",
			fields:  6, expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := MustParseSemVer(tt.version)
			result, err := v.Format(tt.fields)
			if tt.expectedError {
				if err == nil {
					t.Fatal("expected error but got none")
				}
				if !errors.Is(err, ErrInvalidFieldCount) {
					t.Errorf("expected ErrInvalidFieldCount, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if result != tt.expected {
				t.Errorf("got %q, want %q", result, tt.expected)
			}
		})
	}
}

func TestSemVerCompare(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected int
	}{
		{
			name: "equal triples",
			a:    "1.2.3",
			b:    "1.2.3",

			expected: 0,
		},
		{
			name:     "release outranks prerelease",
			a:        "1.0.0",
			b:        "1.0.0-rc.1",
			expected: 1,
		},
		{
			name:     "numeric identifiers compare numerically",
			a:        "1.0.0-beta.2",
			b:        "1.0.0-beta.11",
			expected: -1,
		},
		{
			name:     "numeric identifier ranks below alphanumeric",
			a:        "1.0.0-2",
			b:        "1.0.0-alpha",
			expected: -1,
		},
		{
			name:     "alphanumeric identifiers compare byte-wise",
			a:        "1.0.0-alpha",
			b:        "1.0.0-beta",
			expected: -1,
		},
		{
			name:     "prefix ranks below longer label",
			a:        "1.0.0-alpha",
			b:        "1.0.0-alpha.1",
			expected: -1,
		},
		{
			name:     "build metadata ignored",
			a:        "1.0.0+build1",
			b:        "1.0.0+build2",
			expected: 0,
		},
		{
			name:     "build metadata ignored with prerelease",
			a:        "1.0.0-rc.1+linux",
			b:        "1.0.0-rc.1+windows",
			expected: 0,
		},
		{
			name:     "numeric identifiers beyond int64",
			a:        "1.0.0-99999999999999999999998",
			b:        "1.0.0-99999999999999999999999",
			expected: -1,
		},
		{
			name:     "core difference beats labels",
			a:        "1.0.1-alpha",
			b:        "1.0.0",
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseSemVer(tt.a)
			b := MustParseSemVer(tt.b)
			if got := a.Compare(b); got != tt.expected {
				t.Errorf("Compare: got %d, want %d", got, tt.expected)
			}
			if got := b.Compare(a); got != -tt.expected {
				t.Errorf("reverse Compare: got %d, want %d", got, -tt.expected)
			}
		})
	}
}

func TestSemVerPrecedenceChain(t *testing.T) {
	// The canonical ordering example from the Semantic Versioning spec.
	chain := []string{
		"1.0.0-alpha",
		"1.0.0-alpha.1",
		"1.0.0-alpha.beta",
		"1.0.0-beta",
		"1.0.0-beta.2",
		"1.0.0-beta.11",
		"1.0.0-rc.1",
		"1.0.0",
	}

	for i := 0; i < len(chain)-1; i++ {
		lower := MustParseSemVer(chain[i])
		higher := MustParseSemVer(chain[i+1])
		if got := lower.Compare(higher); got != -1 {
			t.Errorf("%s vs %s: got %d, want -1", chain[i], chain[i+1], got)
		}
		if got := higher.Compare(lower); got != 1 {
			t.Errorf("%s vs %s: got %d, want 1", chain[i+1], chain[i], got)
		}
	}
}

func TestCompareSemVerNullTolerant(t *testing.T) {
	v := MustParseSemVer("1.0.0")

	if got := CompareSemVer(nil, nil); got != 0 {
		t.Errorf("CompareSemVer(nil, nil): got %d, want 0", got)
	}
	if got := CompareSemVer(nil, v); got != -1 {
		t.Errorf("CompareSemVer(nil, v): got %d, want -1", got)
	}
	if got := CompareSemVer(v, nil); got != 1 {
		t.Errorf("CompareSemVer(v, nil): got %d, want 1", got)
	}
	if !EqualSemVer(nil, nil) {
		t.Error("EqualSemVer(nil, nil): got false, want true")
	}
	if EqualSemVer(v, nil) {
		t.Error("EqualSemVer(v, nil): got true, want false")
	}
}

func TestSemVerEqual(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected bool
	}{
		{
			name:     "identical",
			a:        "1.2.3-rc.1",
			b:        "1.2.3-rc.1",
			expected: true,
		},
		{
			name:     "build excluded from equality",
			a:        "1.2.3+build1",
			b:        "1.2.3+build2",
			expected: true,
		},
		{
			name:     "prerelease participates in equality",
			a:        "1.2.3-rc.1",
			b:        "1.2.3-rc.2",
			expected: false,
		},
		{
			name:     "release differs from prerelease",
			a:        "1.2.3",
			b:        "1.2.3-rc.1",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := MustParseSemVer(tt.a)
			b := MustParseSemVer(tt.b)
			if got := a.Equal(b); got != tt.expected {
				t.Errorf("Equal: got %v, want %v", got, tt.expected)
			}
			if (a.Compare(b) == 0) != tt.expected {
				t.Error("Equal and Compare disagree")
			}
			if tt.expected && a.Hash() != b.Hash() {
				t.Error("equal versions must hash identically")
			}
		})
	}
}

func TestSemVerBumpKeepsLabels(t *testing.T) {
	v := MustParseSemVer("1.2.3-rc.1+build.5")

	if err := v.BumpMinor(1); err != nil {
		t.Fatalf("BumpMinor failed: %v", err)
	}
	if v.String() != "1.3.0-rc.1+build.5" {
		t.Errorf("got %q, want %q", v.String(), "1.3.0-rc.1+build.5")
	}

	if err := v.BumpMajor(1); err != nil {
		t.Fatalf("BumpMajor failed: %v", err)
	}
	if v.String() != "2.0.0-rc.1+build.5" {
		t.Errorf("got %q, want %q", v.String(), "2.0.0-rc.1+build.5")
	}

	if err := v.BumpPatch(-1); !errors.Is(err, ErrNegativeIncrement) {
		t.Errorf("expected ErrNegativeIncrement, got %v", err)
	}
}

func TestSemVerCore(t *testing.T) {
	v := MustParseSemVer("1.2.3-rc.1+build.5")

	core := v.Core()
	if core.String() != "1.2.3" {
		t.Errorf("got %q, want %q", core.String(), "1.2.3")
	}

	// Core returns a copy; mutating it must not touch the semantic value.
	if err := core.BumpMajor(1); err != nil {
		t.Fatalf("BumpMajor failed: %v", err)
	}
	if v.Major() != 1 {
		t.Errorf("semantic version mutated through Core copy: %v", v)
	}
}

func TestSemVerIsPrerelease(t *testing.T) {
	if !MustParseSemVer("1.0.0-rc.1").IsPrerelease() {
		t.Error("expected prerelease")
	}
	if MustParseSemVer("1.0.0+build").IsPrerelease() {
		t.Error("build metadata alone is not a prerelease")
	}
}

func TestVersionSemVerWiden(t *testing.T) {
	v := MustParseVersion("1.2.3")
	sv := v.SemVer()

	if sv.String() != "1.2.3" {
		t.Errorf("got %q, want %q", sv.String(), "1.2.3")
	}
	if sv.IsPrerelease() {
		t.Error("widened version must not carry labels")
	}
}

func TestSemVerTextRoundTrip(t *testing.T) {
	tests := []string{
		"1.2.3",
		"1.2.3-rc.1",
		"1.2.3+build.5",
		"1.2.3-rc.1+build.5",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v := MustParseSemVer(input)
			text, err := v.MarshalText()
			if err != nil {
				t.Fatalf("MarshalText failed: %v", err)
			}
			var back SemVer
			if err := back.UnmarshalText(text); err != nil {
				t.Fatalf("UnmarshalText failed: %v", err)
			}
			if back.String() != input {
				t.Errorf("round-trip mismatch: got %q, want %q", back.String(), input)
			}
		})
	}
}

// ExampleParseSemVer demonstrates parsing semantic version strings
func ExampleParseSemVer() {
	v, _ := ParseSemVer("1.2.3-rc.1+build.5")

	fmt.Println(v.Prerelease())
	fmt.Println(v.Build())
	fmt.Println(v.String())
	// Output:
	// rc.1
	// build.5
	// 1.2.3-rc.1+build.5
}

// ExampleSemVer_Compare demonstrates semantic version precedence
func ExampleSemVer_Compare() {
	alpha := MustParseSemVer("1.0.0-alpha")
	beta := MustParseSemVer("1.0.0-beta")
	release := MustParseSemVer("1.0.0")

	fmt.Println(alpha.Compare(beta))
	fmt.Println(beta.Compare(release))
	fmt.Println(release.Compare(alpha))
	// Output:
	// -1
	// -1
	// 1
}

// ExampleSemVer_Format demonstrates field-count formatting with labels
func ExampleSemVer_Format() {
	v := MustParseSemVer("1.2.3-rc.1+build.5")

	three, _ := v.Format(3)
	four, _ := v.Format(4)
	five, _ := v.Format(5)

	fmt.Println(three)
	fmt.Println(four)
	fmt.Println(five)
	// Output:
	// 1.2.3
	// 1.2.3-rc.1
	// 1.2.3-rc.1+build.5
}
