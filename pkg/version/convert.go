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
	"sync"

	"github.com/s33d1ing/verskit/pkg/sysver"
)

// The system version type has no fields for textual labels, so converting a
// SemVer with labels would otherwise lose them. The converter keeps a
// process-wide association from each produced *sysver.Version to its
// originating labels; converting that exact instance back recovers them.
// System versions obtained any other way carry no labels.
var (
	sysLabelsMu sync.RWMutex
	sysLabels   = make(map[*sysver.Version]labelPair)
)

type labelPair struct {
	prerelease string
	build      string
}

// Sys converts the version to the system form: major and minor copy
// directly, patch becomes the build field, and revision is left unset.
func (v *Version) Sys() *sysver.Version {
	return &sysver.Version{
		Major:    v.major,
		Minor:    v.minor,
		Build:    v.patch,
		Revision: sysver.Unset,
	}
}

// Sys converts the semantic version to the system form the same way the
// core kind does. If the version carries prerelease or build labels, they
// are recorded against the produced instance so SemVerFromSys can recover
// them later.
func (v *SemVer) Sys() *sysver.Version {
	sv := v.core.Sys()
	if v.prerelease != "" || v.build != "" {
		sysLabelsMu.Lock()
		sysLabels[sv] = labelPair{prerelease: v.prerelease, build: v.build}
		sysLabelsMu.Unlock()
	}
	return sv
}

// FromSys converts a system version to the core kind. Major and minor copy
// directly; the build field becomes patch, defaulting to 0 when unset.
// A nil input fails with ErrNilVersion; a set revision field fails with
// ErrRevisionSet because a four-field version has no three-component
// equivalent.
func FromSys(sv *sysver.Version) (*Version, error) {
	if sv == nil {
		return nil, ErrNilVersion
	}
	if sv.HasRevision() {
		return nil, fmt.Errorf("%w: %s", ErrRevisionSet, sv)
	}
	if sv.Major < 0 || sv.Minor < 0 {
		return nil, fmt.Errorf("%w: %d.%d", ErrNegativeComponent, sv.Major, sv.Minor)
	}
	patch := 0
	if sv.HasBuild() {
		patch = sv.Build
	}
	return &Version{major: sv.Major, minor: sv.Minor, patch: patch}, nil
}

// SemVerFromSys converts a system version to the semantic kind under the
// same rules as FromSys. If the input is the exact instance a previous
// SemVer.Sys call produced, the recorded prerelease and build labels are
// recovered; otherwise both labels are absent.
func SemVerFromSys(sv *sysver.Version) (*SemVer, error) {
	core, err := FromSys(sv)
	if err != nil {
		return nil, err
	}

	out := &SemVer{core: *core}
	sysLabelsMu.RLock()
	labels, ok := sysLabels[sv]
	sysLabelsMu.RUnlock()
	if ok {
		out.prerelease = labels.prerelease
		out.build = labels.build
	}
	return out, nil
}
