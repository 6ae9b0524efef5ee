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

// Package serializer provides encoding and decoding of structured data in multiple formats.
//
// # Overview
//
// The serializer package handles conversion between data structures and
// various output formats including JSON, YAML, and human-readable tables.
// It supports both encoding (writing data) and decoding (reading data)
// operations with automatic format detection.
//
// # Supported Formats
//
// JSON:
//   - Machine-parseable, compact representation
//   - Suitable for API responses and programmatic consumption
//   - Standard encoding/json package
//
// YAML:
//   - Human-readable with preserved structure
//   - Suitable for configuration files and version control
//   - gopkg.in/yaml.v3 package
//
// Table:
//   - Flattened FIELD/VALUE text representation
//   - Suitable for terminal/console viewing
//   - Read-only (no deserialization support)
//
// # Usage - Encoding
//
// Write to stdout (YAML):
//
//	w := serializer.NewStdoutWriter(serializer.FormatYAML)
//	defer w.Close()
//
//	data := map[string]any{"version": "1.0.0", "status": "ok"}
//	if err := w.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// Write to a file, falling back to stdout when the path is empty:
//
//	w := serializer.NewFileWriterOrStdout(serializer.FormatJSON, outputPath)
//	if closer, ok := w.(serializer.Closer); ok {
//	    defer closer.Close()
//	}
//	if err := w.Serialize(ctx, data); err != nil {
//	    log.Fatal(err)
//	}
//
// # Usage - Decoding
//
// Read from a file with automatic format detection:
//
//	reader, err := serializer.NewFileReaderAuto("versions.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer reader.Close()
//
//	var manifest Manifest
//	if err := reader.Deserialize(&manifest); err != nil {
//	    log.Fatal(err)
//	}
//
// Or load in one call with the generic helper:
//
//	manifest, err := serializer.FromFile[Manifest]("versions.yaml")
//
// Read with a custom io.Reader:
//
//	reader, err := serializer.NewReader(serializer.FormatYAML, strings.NewReader(yamlData))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var manifest Manifest
//	if err := reader.Deserialize(&manifest); err != nil {
//	    log.Fatal(err)
//	}
//
// # Format Detection
//
// File extension-based detection:
//   - .json → JSON
//   - .yaml, .yml → YAML
//   - .table, .txt → Table
//   - Other → JSON (default)
//
// Format detection is automatic when using:
//   - NewFileReaderAuto(path)
//   - FromFile[T](path)
//
// # Remote Sources
//
// File readers accept http:// and https:// URLs. Remote content is
// downloaded with a pooled, timeout-bounded HTTP client (HttpReader) and
// rejected when it exceeds the configured size cap.
//
// # Table Format
//
// The table format flattens nested structures into dotted keys:
//
//	FIELD            VALUE
//	-----            -----
//	Canonical        1.2.3-rc.1
//	Core.Major       1
//	Core.Minor       2
//	Core.Patch       3
//	Prerelease       rc.1
//
// Table format:
//   - Does not support deserialization (read-only)
//   - Best for human viewing in terminals
//   - Title-cases key segments for display
//
// # Resource Management
//
// Always close serializers and readers that manage files:
//
//	reader, err := serializer.NewFileReaderAuto("versions.json")
//	if err != nil {
//	    return err
//	}
//	defer reader.Close()  // Required for file resources
//
// Stdout writers don't require closing but Close() is safe to call.
//
// # Error Handling
//
// Errors are returned when:
//   - Format is unknown or unsupported
//   - File cannot be opened or created
//   - Data cannot be marshaled/unmarshaled
//   - Table format used for deserialization
//
// All errors include context for debugging.
//
// # Integration
//
// Used throughout verskit for data I/O:
//   - pkg/cli - Command output formatting and manifest loading
//   - pkg/server - HTTP response encoding
package serializer
