// Package version provides strict semantic version parsing, comparison,
// formatting, and interoperability with the legacy numeric version form.
//
// # Overview
//
// Two version kinds are implemented:
//
//   - Version: the reduced core kind, major.minor.patch only
//   - SemVer: full Semantic Versioning 2.0.0, adding optional prerelease
//     and build-metadata labels
//
// Both kinds parse against anchored grammars: the entire input must match,
// and leading zeros, signs, "v" prefixes, whitespace, dangling separators,
// and extra components are rejected. Minor and patch may be omitted and
// default to 0, so "1", "1.2", and "1.2.0-rc.1+build.5" are all valid.
//
// # Usage
//
// Parse a version string:
//
//	v, err := version.ParseSemVer("1.2.3-rc.1+build.5")
//	if err != nil {
//	    // Handle error
//	}
//	fmt.Println(v.String()) // Output: 1.2.3-rc.1+build.5
//
// Every strict parse has a non-raising counterpart that reports failure
// through a boolean instead of an error:
//
//	if v, ok := version.TryParseSemVer(input); ok {
//	    fmt.Println(v.Prerelease())
//	}
//
// Compare versions:
//
//	a := version.MustParseSemVer("1.0.0-alpha")
//	b := version.MustParseSemVer("1.0.0")
//	if a.Compare(b) < 0 {
//	    fmt.Println("prerelease ranks below the release")
//	}
//
// Create versions programmatically:
//
//	v, err := version.NewSemVer(1, 2, 3, version.WithPrerelease("beta.2"))
//
// # Precedence
//
// Compare applies Semantic Versioning 2.0.0 precedence: major, minor, and
// patch numerically; then a release outranks any prerelease of the same
// triple; then prerelease labels compare identifier by identifier, where
// purely numeric identifiers compare numerically and rank below
// alphanumeric ones, alphanumeric identifiers compare byte-wise, and a
// label that is a strict prefix of another ranks below it. Build metadata
// never participates in precedence or equality, so "1.0.0+linux" and
// "1.0.0+windows" are equal.
//
// The package-level Compare, CompareSemVer, Equal, and EqualSemVer
// functions additionally tolerate nil operands: nil ranks below any
// present version and two nils are equal.
//
// # Formatting
//
// Format renders a selectable number of fields. The core kind accepts 1-3
// fields; the semantic kind accepts 1-5, where 4 appends the prerelease
// label and 5 additionally appends the build label, each only when
// present. Counts outside the window fail with ErrInvalidFieldCount.
//
// # Increments
//
// BumpMajor, BumpMinor, and BumpPatch mutate the receiver in place and
// cascade: bumping major zeroes minor and patch, bumping minor zeroes
// patch. Negative amounts fail with ErrNegativeIncrement. Increments on a
// SemVer leave its labels untouched.
//
// # System Version Interoperability
//
// Sys converts either kind to the legacy numeric form in pkg/sysver
// (major, minor, build=patch, revision unset). Because that form has no
// label fields, SemVer.Sys records any labels out of band, keyed by the
// produced instance; SemVerFromSys on that exact instance recovers them:
//
//	v := version.MustParseSemVer("1.2.3-rc.1+build.5")
//	sv := v.Sys()                       // 1.2.3 as a system version
//	back, _ := version.SemVerFromSys(sv)
//	fmt.Println(back.String())          // Output: 1.2.3-rc.1+build.5
//
// Converting a system version with a set revision field fails with
// ErrRevisionSet: a four-field version has no core or semantic equivalent.
//
// # Error Handling
//
// The strict entry points return specific errors for different failure
// modes:
//
//   - ErrEmptyVersion: input string is empty or whitespace
//   - ErrInvalidFormat: input does not match the grammar
//   - ErrTooManyComponents: more than 3 numeric components supplied
//   - ErrNegativeComponent: a numeric component is negative
//   - ErrInvalidPrerelease, ErrInvalidBuild: a label fails its grammar
//   - ErrNegativeIncrement: a Bump amount is negative
//   - ErrInvalidFieldCount: a Format field count is out of range
//   - ErrNilVersion: a nil system version where a value is required
//   - ErrRevisionSet: a system version carries a revision component
//
// For constant initialization, use MustParseVersion or MustParseSemVer,
// which panic on error:
//
//	var MinVersion = version.MustParseVersion("1.0.0")
package version
