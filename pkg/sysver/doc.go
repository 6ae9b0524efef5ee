// Package sysver models the legacy numeric version type used by hosting
// environments: two to four dotted integer fields (major, minor, build,
// revision) with no prerelease or build-metadata labels.
//
// # Overview
//
// The type exists for interoperability. Tooling that consumes semantic
// versions still has to exchange version values with systems that only
// understand the four-field numeric form; this package gives that form a
// name, a strict constructor, parsing, rendering, and a total ordering.
//
// Unset trailing fields are represented by the Unset sentinel (-1), so
// "1.2" and "1.2.0" remain distinguishable:
//
//	v, _ := sysver.New(1, 2)
//	fmt.Println(v.String())      // Output: 1.2
//	fmt.Println(v.HasBuild())    // Output: false
//
// # Ordering
//
// Compare orders field by field (major, minor, build, revision); an unset
// field ranks below any set field, so 1.2 < 1.2.0 < 1.2.0.0. The package
// level Compare additionally tolerates nil on either side.
//
// # Conversion
//
// Conversion to and from the semantic version kinds lives in pkg/version,
// which maps build to patch and preserves prerelease/build labels
// out of band. This package has no knowledge of those kinds.
package sysver
