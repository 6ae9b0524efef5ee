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

package imageref

import (
	"fmt"
	"strings"

	"github.com/distribution/reference"

	apperrors "github.com/s33d1ing/verskit/pkg/errors"
	"github.com/s33d1ing/verskit/pkg/version"
)

// Reference represents a parsed container image reference.
type Reference struct {
	// Registry is the registry host (e.g., "ghcr.io", "localhost:5000").
	// Docker Hub normalizes to "docker.io".
	Registry string
	// Repository is the image repository path (e.g., "nvidia/cuda").
	// Docker Hub official images normalize to "library/<name>".
	Repository string
	// Tag is the image tag (e.g., "v1.2.3"). Empty when the reference
	// carries no tag.
	Tag string
	// Digest is the content digest (e.g., "sha256:abc..."). Empty when
	// the reference carries no digest.
	Digest string
}

// Parse parses a container image reference into its components.
// Short references are normalized the way Docker does it:
// "nginx:1.27" becomes docker.io/library/nginx:1.27.
func Parse(ref string) (*Reference, error) {
	trimmed := strings.TrimSpace(ref)
	if trimmed == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidRequest, "image reference is empty")
	}

	named, err := reference.ParseNormalizedNamed(trimmed)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidRequest, "invalid image reference", err,
			map[string]any{"reference": ref})
	}

	parsed := &Reference{
		Registry:   reference.Domain(named),
		Repository: reference.Path(named),
	}

	if tagged, ok := named.(reference.Tagged); ok {
		parsed.Tag = tagged.Tag()
	}
	if digested, ok := named.(reference.Digested); ok {
		parsed.Digest = digested.Digest().String()
	}

	return parsed, nil
}

// String returns the full reference string:
// "registry/repository[:tag][@digest]".
func (r *Reference) String() string {
	s := fmt.Sprintf("%s/%s", r.Registry, r.Repository)
	if r.Tag != "" {
		s += ":" + r.Tag
	}
	if r.Digest != "" {
		s += "@" + r.Digest
	}
	return s
}

// WithTag returns a copy of the reference with the specified tag.
// The digest is dropped: it identified the previously tagged content.
func (r *Reference) WithTag(tag string) *Reference {
	return &Reference{
		Registry:   r.Registry,
		Repository: r.Repository,
		Tag:        tag,
	}
}

// TagVersion interprets the tag as a semantic version. A single leading
// "v" or "V" is stripped before parsing ("v1.2.3" reads as 1.2.3).
// Untagged references and non-version tags return an error.
func (r *Reference) TagVersion() (*version.SemVer, error) {
	if r.Tag == "" {
		return nil, apperrors.New(apperrors.ErrCodeInvalidVersion, "image reference has no tag")
	}

	label := r.Tag
	if label[0] == 'v' || label[0] == 'V' {
		label = label[1:]
	}

	sv, err := version.ParseSemVer(label)
	if err != nil {
		return nil, apperrors.WrapWithContext(apperrors.ErrCodeInvalidVersion, "image tag is not a semantic version", err,
			map[string]any{"tag": r.Tag})
	}
	return sv, nil
}
