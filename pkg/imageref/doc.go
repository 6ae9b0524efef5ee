// Package imageref parses container image references and reads versions
// out of their tags.
//
// Image tags are where versions live in the container ecosystem. This
// package splits a reference into registry, repository, tag, and digest
// using the same normalization rules Docker applies, then exposes the
// tag as a semantic version for comparison and sorting.
//
// # Usage
//
// Parse a reference and read its tag as a version:
//
//	ref, err := imageref.Parse("ghcr.io/org/app:v1.4.0")
//	if err != nil {
//	    return err
//	}
//
//	sv, err := ref.TagVersion()
//	if err != nil {
//	    return err
//	}
//	fmt.Println(sv.String()) // 1.4.0
//
// Short references normalize the way Docker does it: "nginx:1.27"
// parses as docker.io/library/nginx:1.27.
//
// # Integration
//
// Used by the CLI inspect command (--image) to decompose versions
// embedded in image tags.
package imageref
