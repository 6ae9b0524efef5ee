package version

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/s33d1ing/verskit/pkg/sysver"
)

func TestVersionSys(t *testing.T) {
	v := MustParseVersion("1.2.3")
	sv := v.Sys()

	if sv.Major != 1 || sv.Minor != 2 || sv.Build != 3 {
		t.Errorf("got %s, want 1.2.3", sv)
	}
	if sv.HasRevision() {
		t.Error("revision must be left unset")
	}
}

func TestFromSys(t *testing.T) {
	tests := []struct {
		name          string
		sys           *sysver.Version
		expected      string
		expectedError bool
	}{
		{
			name:          "three fields map directly",
			sys:           sysver.MustParse("1.2.3"),
			expected:      "1.2.3",
			expectedError: false,
		},
		{
			name:          "unset build defaults patch to zero",
			sys:           sysver.MustParse("1.2"),
			expected:      "1.2.0",
			expectedError: false,
		},
		{
			name:          "invalid - revision set",
			sys:           sysver.MustParse("1.2.3.4"),
			expectedError: true,
		},
		{
			name:          "invalid - zero revision still counts as set",
			sys:           sysver.MustParse("1.2.3.0"),
			expectedError: true,
		},
		{
			name:          "invalid - nil",
			sys:           nil,
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := FromSys(tt.sys)
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

func TestFromSysErrors(t *testing.T) {
	if _, err := FromSys(nil); !errors.Is(err, ErrNilVersion) {
		t.Errorf("expected ErrNilVersion, got %v", err)
	}
	if _, err := FromSys(sysver.MustParse("1.2.3.4")); !errors.Is(err, ErrRevisionSet) {
		t.Errorf("expected ErrRevisionSet, got %v", err)
	}
	if _, err := SemVerFromSys(nil); !errors.Is(err, ErrNilVersion) {
		t.Errorf("expected ErrNilVersion, got %v", err)
	}
	if _, err := SemVerFromSys(sysver.MustParse("1.2.3.4")); !errors.Is(err, ErrRevisionSet) {
		t.Errorf("expected ErrRevisionSet, got %v", err)
	}

	// Hand-built negative fields must not leak into a version value.
	if _, err := FromSys(&sysver.Version{Major: -1, Minor: 0, Build: sysver.Unset, Revision: sysver.Unset}); !errors.Is(err, ErrNegativeComponent) {
		t.Errorf("expected ErrNegativeComponent, got %v", err)
	}
}

func TestSemVerSysRoundTrip(t *testing.T) {
	tests := []string{
		"1.2.3-rc.1+build.5",
		"1.2.3-alpha",
		"1.2.3+build.5",
		"1.2.3",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v := MustParseSemVer(input)
			sv := v.Sys()

			if sv.Build != v.Patch() {
				t.Errorf("Build: got %d, want %d", sv.Build, v.Patch())
			}
			if sv.HasRevision() {
				t.Error("revision must be left unset")
			}

			back, err := SemVerFromSys(sv)
			if err != nil {
				t.Fatalf("SemVerFromSys failed: %v", err)
			}
			got, err := back.Format(5)
			if err != nil {
				t.Fatalf("Format failed: %v", err)
			}
			want, _ := v.Format(5)
			if got != want {
				t.Errorf("round-trip mismatch: got %q, want %q", got, want)
			}
		})
	}
}

func TestSemVerFromSysForeignValue(t *testing.T) {
	// A system version not produced by Sys carries no recoverable labels,
	// even if it is numerically identical to one that was.
	labeled := MustParseSemVer("1.2.3-rc.1")
	produced := labeled.Sys()

	foreign := sysver.MustParse("1.2.3")
	back, err := SemVerFromSys(foreign)
	if err != nil {
		t.Fatalf("SemVerFromSys failed: %v", err)
	}
	if back.Prerelease() != "" || back.Build() != "" {
		t.Errorf("foreign value recovered labels: %q", back.String())
	}

	// The produced instance still round-trips.
	back, err = SemVerFromSys(produced)
	if err != nil {
		t.Fatalf("SemVerFromSys failed: %v", err)
	}
	if back.Prerelease() != "rc.1" {
		t.Errorf("produced value lost labels: %q", back.String())
	}
}

func TestSysLabelsPerInstance(t *testing.T) {
	// Each produced instance carries its own labels.
	a := MustParseSemVer("1.0.0-alpha").Sys()
	b := MustParseSemVer("1.0.0-beta").Sys()

	backA, err := SemVerFromSys(a)
	if err != nil {
		t.Fatalf("SemVerFromSys failed: %v", err)
	}
	backB, err := SemVerFromSys(b)
	if err != nil {
		t.Fatalf("SemVerFromSys failed: %v", err)
	}

	if backA.Prerelease() != "alpha" {
		t.Errorf("instance a: got %q, want %q", backA.Prerelease(), "alpha")
	}
	if backB.Prerelease() != "beta" {
		t.Errorf("instance b: got %q, want %q", backB.Prerelease(), "beta")
	}
}

func TestConvertConcurrent(t *testing.T) {
	// Converters share the label table; concurrent use must be safe.
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			v, err := NewSemVer(1, 0, n, WithPrerelease("rc.1"))
			if err != nil {
				t.Errorf("NewSemVer failed: %v", err)
				return
			}
			sv := v.Sys()
			back, err := SemVerFromSys(sv)
			if err != nil {
				t.Errorf("SemVerFromSys failed: %v", err)
				return
			}
			if !back.Equal(v) {
				t.Errorf("round-trip mismatch: %q != %q", back.String(), v.String())
			}
		}(i)
	}
	wg.Wait()
}

// ExampleSemVer_Sys demonstrates label preservation across the system
// version round trip.
func ExampleSemVer_Sys() {
	v := MustParseSemVer("1.2.3-rc.1+build.5")

	sv := v.Sys()
	fmt.Println(sv.String())

	back, _ := SemVerFromSys(sv)
	fmt.Println(back.String())
	// Output:
	// 1.2.3
	// 1.2.3-rc.1+build.5
}

// ExampleFromSys demonstrates the revision rejection rule.
func ExampleFromSys() {
	twoField, _ := sysver.New(1, 2)
	v, _ := FromSys(twoField)
	fmt.Println(v.String())

	fourField, _ := sysver.New(1, 2, 3, 4)
	_, err := FromSys(fourField)
	fmt.Println(err != nil)
	// Output:
	// 1.2.0
	// true
}
