package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// FormatFromPath determines the serialization format based on file extension.
// Supported extensions:
//   - .json → FormatJSON
//   - .yaml, .yml → FormatYAML
//   - .table, .txt → FormatTable
//
// Returns FormatJSON as default for unknown extensions.
// Extension matching is case-insensitive.
func FormatFromPath(filePath string) Format {
	lowerPath := strings.ToLower(filePath)
	switch {
	case strings.HasSuffix(lowerPath, ".json"):
		return FormatJSON
	case strings.HasSuffix(lowerPath, ".yaml"), strings.HasSuffix(lowerPath, ".yml"):
		return FormatYAML
	case strings.HasSuffix(lowerPath, ".table"), strings.HasSuffix(lowerPath, ".txt"):
		return FormatTable
	default:
		slog.Warn("unknown file extension, defaulting to JSON", "filePath", filePath)
		return FormatJSON
	}
}

// Reader handles deserialization of structured data from various formats (JSON, YAML).
// It supports reading from any io.Reader source including files, strings, and HTTP responses.
//
// Resource Management:
//   - Close must be called to release resources when using NewFileReader or NewFileReaderAuto
//   - Safe to call Close multiple times (idempotent)
//   - Close is a no-op for readers created with NewReader from non-closeable sources
//
// Supported formats: JSON, YAML (Table format is write-only)
//
// Streaming:
//   - The decoder is created once and reused, so repeated Deserialize calls
//     consume consecutive documents from the same input stream
type Reader struct {
	format  Format
	input   io.Reader
	closer  io.Closer
	jsonDec *json.Decoder
	yamlDec *yaml.Decoder
}

// NewReader creates a new Reader for deserializing data from an io.Reader source.
//
// Parameters:
//   - format: The serialization format (FormatJSON or FormatYAML)
//   - input: Any io.Reader implementation (e.g., strings.Reader, bytes.Buffer, *os.File)
//
// Returns error if:
//   - format is unknown or unsupported
//   - format is FormatTable (table format does not support deserialization)
//
// Resource Management:
//   - If input implements io.Closer, it will be stored and closed by Reader.Close()
//   - Otherwise, Close() is a no-op
//
// Example:
//
//	reader, err := NewReader(FormatJSON, strings.NewReader(`{"key":"value"}`))
//	if err != nil { panic(err) }
//	var data map[string]string
//	err = reader.Deserialize(&data)
func NewReader(format Format, input io.Reader) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	r := &Reader{
		format: format,
		input:  input,
	}

	// Store closer if input implements it
	if closer, ok := input.(io.Closer); ok {
		r.closer = closer
	}

	return r, nil
}

// NewFileReader creates a new Reader that reads from a file path or URL.
//
// Parameters:
//   - format: The serialization format (FormatJSON or FormatYAML)
//   - filePath: Local file path or HTTP/HTTPS URL
//
// URL Support:
//   - Supports http:// and https:// URLs
//   - Downloads remote files to temporary directory
//   - Temporary files are managed by Reader.Close()
//
// Returns error if:
//   - format is unknown or unsupported
//   - format is FormatTable (table format does not support deserialization)
//   - file cannot be opened or URL cannot be downloaded
//
// Resource Management:
//   - Close must be called to release the file handle
//   - For remote URLs, Close also removes the temporary downloaded file
//
// Example:
//
//	reader, err := NewFileReader(FormatJSON, "/path/to/manifest.json")
//	if err != nil { panic(err) }
//	defer reader.Close()
func NewFileReader(format Format, filePath string) (*Reader, error) {
	if format.IsUnknown() {
		return nil, fmt.Errorf("unknown format: %s", format)
	}

	if format == FormatTable {
		return nil, fmt.Errorf("table format does not support deserialization")
	}

	// If the filePath is a URL, download it to a temp file first
	var file *os.File
	var err error

	if strings.HasPrefix(filePath, "http://") || strings.HasPrefix(filePath, "https://") {
		name := fmt.Sprintf("verskit-%d.tmp", time.Now().UnixNano())
		tempFilePath := filepath.Join(os.TempDir(), name)
		httpReader := NewHttpReader()
		if err = httpReader.Download(filePath, tempFilePath); err != nil {
			return nil, fmt.Errorf("failed to download remote file: %w", err)
		}
		file, err = os.Open(tempFilePath)
	} else {
		file, err = os.Open(filePath)
	}

	// Handle file open error
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	// Create Reader
	return &Reader{
		format: format,
		input:  file,
		closer: file,
	}, nil
}

// NewFileReaderAuto creates a new Reader with automatic format detection.
// The format is determined from the file extension using FormatFromPath.
//
// This is a convenience wrapper around NewFileReader that auto-detects the format.
// See NewFileReader for full documentation on supported paths, URLs, and resource management.
//
// Example:
//
//	reader, err := NewFileReaderAuto("manifest.yaml") // Auto-detects YAML format
//	if err != nil { panic(err) }
//	defer reader.Close()
//	var manifest MyManifest
//	err = reader.Deserialize(&manifest)
func NewFileReaderAuto(filePath string) (*Reader, error) {
	format := FormatFromPath(filePath)
	return NewFileReader(format, filePath)
}

// Deserialize reads data from the input source and unmarshals it into v.
//
// Parameters:
//   - v: A pointer to the target structure or variable
//
// Type Requirements:
//   - v must be a pointer (e.g., &myStruct, &mySlice, &myMap)
//   - The underlying type must be compatible with the format (JSON or YAML)
//
// Streaming:
//   - Each call decodes the next document from the input, so inputs holding
//     multiple concatenated documents can be read with repeated calls
//   - A call past the last document returns the decoder's EOF error
//
// Returns error if:
//   - Reader is nil
//   - Input source is nil
//   - Data cannot be decoded (invalid format, type mismatch)
//   - Format is FormatTable (not supported for deserialization)
func (r *Reader) Deserialize(v any) error {
	if r == nil {
		return fmt.Errorf("reader is nil")
	}

	if r.input == nil {
		return fmt.Errorf("input source is nil")
	}

	switch r.format {
	case FormatJSON:
		if r.jsonDec == nil {
			r.jsonDec = json.NewDecoder(r.input)
		}
		if err := r.jsonDec.Decode(v); err != nil {
			return fmt.Errorf("failed to decode JSON: %w", err)
		}
		return nil

	case FormatYAML:
		if r.yamlDec == nil {
			r.yamlDec = yaml.NewDecoder(r.input)
		}
		if err := r.yamlDec.Decode(v); err != nil {
			return fmt.Errorf("failed to decode YAML: %w", err)
		}
		return nil

	case FormatTable:
		return fmt.Errorf("table format is not supported for deserialization")

	default:
		return fmt.Errorf("unsupported format for deserialization: %s", r.format)
	}
}

// Close releases any resources held by the Reader.
//
// Behavior:
//   - If Reader was created from a file (NewFileReader), closes the file handle
//   - If Reader was created from a non-closeable source (NewReader), this is a no-op
//   - Sets internal closer to nil after first close to prevent double-close errors
//   - Safe to call on nil Reader
//
// Idempotency:
//   - Safe to call multiple times (subsequent calls are no-ops)
//   - Returns nil on subsequent calls after successful first close
func (r *Reader) Close() error {
	if r == nil {
		return nil
	}

	if r.closer != nil {
		err := r.closer.Close()
		r.closer = nil // Prevent double-close
		return err
	}
	return nil
}

// FromFile is a generic convenience function that loads and deserializes a
// file in one call. The format is detected from the file extension.
//
// Type Parameter:
//   - T: The target type (struct, slice, map, etc.) compatible with JSON/YAML unmarshaling
//
// Parameters:
//   - path: File path or HTTP/HTTPS URL
//
// Returns:
//   - Pointer to populated instance of type T
//   - Error if file cannot be read or deserialized
//
// Resource Management:
//   - Automatically handles Reader creation and cleanup (Close is called internally)
//   - No need to manually close the reader
//
// Example:
//
//	type Manifest struct { Versions []string }
//	manifest, err := FromFile[Manifest]("versions.yaml")
//	if err != nil { panic(err) }
//	fmt.Println(manifest.Versions)
//
// Note: This is a higher-level API. Use NewFileReader directly if you need
// more control over the Reader lifecycle or want to reuse it.
func FromFile[T any](path string) (*T, error) {
	fileFormat := FormatFromPath(path)
	slog.Debug("determined file format",
		slog.String("path", path),
		slog.String("format", string(fileFormat)),
	)

	ser, err := NewFileReader(fileFormat, path)
	if err != nil {
		slog.Error("failed to create file reader", "error", err, "path", path, "format", fileFormat)
		return nil, fmt.Errorf("failed to create serializer for %q: %w", path, err)
	}

	if ser == nil {
		slog.Error("reader is unexpectedly nil despite no error")
		return nil, fmt.Errorf("reader is nil for %q", path)
	}

	defer func() {
		if closeErr := ser.Close(); closeErr != nil {
			slog.Warn("failed to close serializer", "error", closeErr)
		}
	}()

	var r T
	if err := ser.Deserialize(&r); err != nil {
		return nil, fmt.Errorf("failed to deserialize object from %q: %w", path, err)
	}

	slog.Debug("successfully loaded object from file",
		slog.String("path", path),
	)

	return &r, nil
}
