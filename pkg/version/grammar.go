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
	"regexp"
	"strconv"
)

// Pattern fragments shared by both grammars. A numeric component is either
// the single digit 0 or a nonzero digit followed by more digits; no sign,
// no leading zeros. A prerelease identifier is either such a number or an
// alphanumeric/hyphen token with at least one non-digit, which is the only
// place a leading zero may appear. Build identifiers are unrestricted
// alphanumeric/hyphen tokens.
const (
	numFragment      = `0|[1-9]\d*`
	coreFragment     = `(` + numFragment + `)(?:\.(` + numFragment + `))?(?:\.(` + numFragment + `))?`
	prerelIDFragment = `(?:` + numFragment + `|\d*[A-Za-z-][0-9A-Za-z-]*)`
	prerelFragment   = prerelIDFragment + `(?:\.` + prerelIDFragment + `)*`
	buildIDFragment  = `[0-9A-Za-z-]+`
	buildFragment    = buildIDFragment + `(?:\.` + buildIDFragment + `)*`
)

// Both grammars are anchored: the whole input must match, so dangling
// separators, signs, whitespace, and extra components all fail outright.
var (
	coreRegex   = regexp.MustCompile(`^` + coreFragment + `$`)
	semverRegex = regexp.MustCompile(`^` + coreFragment + `(?:-(` + prerelFragment + `))?(?:\+(` + buildFragment + `))?$`)

	prerelLabelRegex = regexp.MustCompile(`^` + prerelFragment + `$`)
	buildLabelRegex  = regexp.MustCompile(`^` + buildFragment + `$`)
)

// parseComponent converts one already-matched numeric component to an int.
// The grammar guarantees the text is unsigned digits, so the only remaining
// failure mode is a value too large for int.
func parseComponent(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: component %q: %v", ErrInvalidFormat, s, err)
	}
	return n, nil
}

// parseCoreMatch fills major/minor/patch from the first three submatches of
// a grammar match. Absent minor and patch default to 0.
func parseCoreMatch(match []string) (major, minor, patch int, err error) {
	major, err = parseComponent(match[1])
	if err != nil {
		return 0, 0, 0, err
	}
	if match[2] != "" {
		minor, err = parseComponent(match[2])
		if err != nil {
			return 0, 0, 0, err
		}
	}
	if match[3] != "" {
		patch, err = parseComponent(match[3])
		if err != nil {
			return 0, 0, 0, err
		}
	}
	return major, minor, patch, nil
}

// validPrereleaseLabel reports whether the label matches the prerelease
// identifier grammar (dot-separated, no leading-zero numerics).
func validPrereleaseLabel(label string) bool {
	return prerelLabelRegex.MatchString(label)
}

// validBuildLabel reports whether the label matches the build-metadata
// identifier grammar (dot-separated alphanumeric/hyphen tokens).
func validBuildLabel(label string) bool {
	return buildLabelRegex.MatchString(label)
}
