/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/s33d1ing/verskit/pkg/serializer"
)

func TestInspectOne(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    string
		want    inspectReport
		wantErr bool
	}{
		{
			name:  "full semantic version",
			input: "1.4.0-rc.1+build.5",
			kind:  kindSemVer,
			want: inspectReport{
				Input:      "1.4.0-rc.1+build.5",
				Kind:       kindSemVer,
				Canonical:  "1.4.0-rc.1+build.5",
				Major:      1,
				Minor:      4,
				Patch:      0,
				Prerelease: "rc.1",
				Build:      "build.5",
			},
		},
		{
			name:  "partial semver normalizes",
			input: "1.2",
			kind:  kindSemVer,
			want: inspectReport{
				Input:     "1.2",
				Kind:      kindSemVer,
				Canonical: "1.2.0",
				Major:     1,
				Minor:     2,
				Patch:     0,
			},
		},
		{
			name:  "core version",
			input: "4",
			kind:  kindCore,
			want: inspectReport{
				Input:     "4",
				Kind:      kindCore,
				Canonical: "4.0.0",
				Major:     4,
			},
		},
		{
			name:    "prerelease rejected under core",
			input:   "1.2.3-rc.1",
			kind:    kindCore,
			wantErr: true,
		},
		{
			name:    "leading zero rejected",
			input:   "01.2.3",
			kind:    kindSemVer,
			wantErr: true,
		},
		{
			name:    "empty input",
			input:   "",
			kind:    kindSemVer,
			wantErr: true,
		},
		{
			name:    "v prefix rejected",
			input:   "v1.2.3",
			kind:    kindSemVer,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inspectOne(tt.input, tt.kind)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("inspectOne(%q, %q) expected error, got %+v", tt.input, tt.kind, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("inspectOne(%q, %q) unexpected error: %v", tt.input, tt.kind, err)
			}
			if *got != tt.want {
				t.Errorf("inspectOne(%q, %q) = %+v, want %+v", tt.input, tt.kind, *got, tt.want)
			}
		})
	}
}

func TestInspectImage(t *testing.T) {
	tests := []struct {
		name          string
		ref           string
		wantInput     string
		wantCanonical string
		wantImage     string
		wantErr       bool
	}{
		{
			name:          "tag with v prefix",
			ref:           "ghcr.io/org/app:v1.4.0",
			wantInput:     "v1.4.0",
			wantCanonical: "1.4.0",
			wantImage:     "ghcr.io/org/app:v1.4.0",
		},
		{
			name:          "bare tag",
			ref:           "ghcr.io/org/app:2.0.0-rc.1",
			wantInput:     "2.0.0-rc.1",
			wantCanonical: "2.0.0-rc.1",
			wantImage:     "ghcr.io/org/app:2.0.0-rc.1",
		},
		{
			name:          "docker hub normalization",
			ref:           "nginx:1.27.0",
			wantInput:     "1.27.0",
			wantCanonical: "1.27.0",
			wantImage:     "docker.io/library/nginx:1.27.0",
		},
		{
			name:    "non-version tag",
			ref:     "ghcr.io/org/app:latest",
			wantErr: true,
		},
		{
			name:    "untagged reference",
			ref:     "ghcr.io/org/app",
			wantErr: true,
		},
		{
			name:    "invalid reference",
			ref:     "not a reference",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := inspectImage(tt.ref)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("inspectImage(%q) expected error, got %+v", tt.ref, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("inspectImage(%q) unexpected error: %v", tt.ref, err)
			}
			if got.Input != tt.wantInput {
				t.Errorf("Input = %q, want %q", got.Input, tt.wantInput)
			}
			if got.Canonical != tt.wantCanonical {
				t.Errorf("Canonical = %q, want %q", got.Canonical, tt.wantCanonical)
			}
			if got.Image != tt.wantImage {
				t.Errorf("Image = %q, want %q", got.Image, tt.wantImage)
			}
			if got.Kind != kindSemVer {
				t.Errorf("Kind = %q, want %q", got.Kind, kindSemVer)
			}
		})
	}
}

func TestParseInspectCmdOptions(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantErr  bool
		validate func(t *testing.T, opts *inspectCmdOptions)
	}{
		{
			name: "version arguments",
			args: []string{"test", "1.2.3", "2.0.0"},
			validate: func(t *testing.T, opts *inspectCmdOptions) {
				if len(opts.versions) != 2 {
					t.Errorf("expected 2 versions, got %d", len(opts.versions))
				}
				if opts.format != serializer.FormatYAML {
					t.Errorf("format = %v, want yaml", opts.format)
				}
				if opts.kind != kindSemVer {
					t.Errorf("kind = %v, want semver", opts.kind)
				}
			},
		},
		{
			name: "file source",
			args: []string{"test", "--file", "versions.yaml"},
			validate: func(t *testing.T, opts *inspectCmdOptions) {
				if opts.filePath != "versions.yaml" {
					t.Errorf("filePath = %q, want versions.yaml", opts.filePath)
				}
			},
		},
		{
			name: "image source",
			args: []string{"test", "--image", "ghcr.io/org/app:v1.0.0"},
			validate: func(t *testing.T, opts *inspectCmdOptions) {
				if opts.imageRef != "ghcr.io/org/app:v1.0.0" {
					t.Errorf("imageRef = %q", opts.imageRef)
				}
			},
		},
		{
			name:    "no source",
			args:    []string{"test"},
			wantErr: true,
		},
		{
			name:    "args and file conflict",
			args:    []string{"test", "--file", "versions.yaml", "1.2.3"},
			wantErr: true,
		},
		{
			name:    "file and image conflict",
			args:    []string{"test", "--file", "versions.yaml", "--image", "nginx:1.27.0"},
			wantErr: true,
		},
		{
			name:    "invalid format",
			args:    []string{"test", "--format", "xml", "1.2.3"},
			wantErr: true,
		},
		{
			name:    "invalid kind",
			args:    []string{"test", "--kind", "legacy", "1.2.3"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var capturedOpts *inspectCmdOptions
			var capturedErr error
			testCmd := &cli.Command{
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "file", Aliases: []string{"f"}},
					&cli.StringFlag{Name: "image"},
					&cli.StringFlag{Name: "kind", Value: kindSemVer},
					&cli.StringFlag{Name: "output", Aliases: []string{"o"}},
					&cli.StringFlag{Name: "format", Value: string(serializer.FormatYAML)},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					capturedOpts, capturedErr = parseInspectCmdOptions(cmd)
					return nil
				},
			}

			if err := testCmd.Run(context.Background(), tt.args); err != nil {
				t.Fatalf("failed to run command: %v", err)
			}

			if (capturedErr != nil) != tt.wantErr {
				t.Fatalf("parseInspectCmdOptions() error = %v, wantErr %v", capturedErr, tt.wantErr)
			}
			if !tt.wantErr && tt.validate != nil {
				tt.validate(t, capturedOpts)
			}
		})
	}
}

func TestInspectCmd_CommandStructure(t *testing.T) {
	cmd := inspectCmd()

	if cmd.Name != "inspect" {
		t.Errorf("Name = %v, want inspect", cmd.Name)
	}

	if cmd.Usage == "" {
		t.Error("Usage should not be empty")
	}

	if cmd.Description == "" {
		t.Error("Description should not be empty")
	}

	requiredFlags := []string{"file", "image", "kind", "output", "format"}
	for _, flagName := range requiredFlags {
		found := false
		for _, flag := range cmd.Flags {
			if hasName(flag, flagName) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("required flag %q not found", flagName)
		}
	}

	if cmd.Action == nil {
		t.Error("Action should not be nil")
	}
}
