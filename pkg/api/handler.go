package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/s33d1ing/verskit/pkg/defaults"
	apperrors "github.com/s33d1ing/verskit/pkg/errors"
	"github.com/s33d1ing/verskit/pkg/serializer"
	"github.com/s33d1ing/verskit/pkg/server"
	"github.com/s33d1ing/verskit/pkg/version"
)

// Version kinds accepted by the kind parameter.
const (
	kindSemVer = "semver"
	kindCore   = "core"
)

// Handler serves the version endpoints.
type Handler struct {
	maxBatch int
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithMaxBatch caps the number of versions accepted by the sort endpoint.
// Non-positive values keep the default.
func WithMaxBatch(n int) HandlerOption {
	return func(h *Handler) {
		if n > 0 {
			h.maxBatch = n
		}
	}
}

// NewHandler creates a Handler with default limits.
func NewHandler(opts ...HandlerOption) *Handler {
	h := &Handler{
		maxBatch: defaults.MaxBatchSize,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// parseResponse is the decomposition of a single version string.
type parseResponse struct {
	Input      string `json:"input"`
	Kind       string `json:"kind"`
	Canonical  string `json:"canonical"`
	Major      int    `json:"major"`
	Minor      int    `json:"minor"`
	Patch      int    `json:"patch"`
	Prerelease string `json:"prerelease,omitempty"`
	Build      string `json:"build,omitempty"`
}

// compareResponse reports the precedence relation between two versions.
type compareResponse struct {
	A        string `json:"a"`
	B        string `json:"b"`
	Kind     string `json:"kind"`
	Result   int    `json:"result"`
	Relation string `json:"relation"`
}

// sortRequest is the body accepted by the sort endpoint.
type sortRequest struct {
	Versions []string `json:"versions" yaml:"versions"`
	Kind     string   `json:"kind,omitempty" yaml:"kind,omitempty"`
	Reverse  bool     `json:"reverse,omitempty" yaml:"reverse,omitempty"`
}

// sortResponse returns the input versions in precedence order.
type sortResponse struct {
	Kind     string   `json:"kind"`
	Reverse  bool     `json:"reverse,omitempty"`
	Count    int      `json:"count"`
	Versions []string `json:"versions"`
}

// HandleParse decomposes a single version supplied via the version query
// parameter. The kind parameter selects the grammar: semver (default) or
// core. Errors are handled and returned in a structured format.
func (h *Handler) HandleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET"},
			})
		return
	}

	q := r.URL.Query()

	raw := q.Get("version")
	if raw == "" {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Missing version parameter", false, nil)
		return
	}

	kind, err := parseKindParam(q.Get("kind"))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid kind parameter", false, map[string]any{"error": err.Error()})
		return
	}

	slog.Debug("parse", "version", raw, "kind", kind)

	resp, err := decompose(raw, kind)
	if err != nil {
		parseFailures.WithLabelValues(kind).Inc()
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidVersion,
			"Invalid version", false, map[string]any{
				"version": raw,
				"error":   err.Error(),
			})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, resp)
}

// HandleCompare compares the a and b query parameters by precedence and
// reports the result as both a sign and a relation word.
func (h *Handler) HandleCompare(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"GET"},
			})
		return
	}

	q := r.URL.Query()

	a, b := q.Get("a"), q.Get("b")
	if a == "" || b == "" {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Missing a or b parameter", false, map[string]any{
				"a": a,
				"b": b,
			})
		return
	}

	kind, err := parseKindParam(q.Get("kind"))
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid kind parameter", false, map[string]any{"error": err.Error()})
		return
	}

	slog.Debug("compare", "a", a, "b", b, "kind", kind)

	result, err := compareVersions(a, b, kind)
	if err != nil {
		parseFailures.WithLabelValues(kind).Inc()
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidVersion,
			"Invalid version", false, map[string]any{"error": err.Error()})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, &compareResponse{
		A:        a,
		B:        b,
		Kind:     kind,
		Result:   result,
		Relation: relationWord(result),
	})
}

// HandleSort orders the versions in the request body by precedence. The
// body is JSON by default; YAML is accepted when the Content-Type says so.
// Batches beyond the configured bound are rejected.
func (h *Handler) HandleSort(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", "POST")
		server.WriteError(w, r, http.StatusMethodNotAllowed, apperrors.ErrCodeMethodNotAllowed,
			"Method not allowed", false, map[string]any{
				"method":  r.Method,
				"allowed": []string{"POST"},
			})
		return
	}
	defer func() {
		if r.Body != nil {
			r.Body.Close()
		}
	}()

	req, err := parseSortRequest(w, r)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid sort request", false, map[string]any{"error": err.Error()})
		return
	}

	if len(req.Versions) == 0 {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"No versions to sort", false, nil)
		return
	}

	if len(req.Versions) > h.maxBatch {
		server.WriteError(w, r, http.StatusRequestEntityTooLarge, apperrors.ErrCodeBatchTooLarge,
			"Too many versions in one request", false, map[string]any{
				"count": len(req.Versions),
				"limit": h.maxBatch,
			})
		return
	}

	kind, err := parseKindParam(req.Kind)
	if err != nil {
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidRequest,
			"Invalid kind value", false, map[string]any{"error": err.Error()})
		return
	}

	slog.Debug("sort", "count", len(req.Versions), "kind", kind, "reverse", req.Reverse)
	sortBatchSize.Observe(float64(len(req.Versions)))

	sorted, err := sortVersions(req.Versions, kind, req.Reverse)
	if err != nil {
		parseFailures.WithLabelValues(kind).Inc()
		server.WriteError(w, r, http.StatusBadRequest, apperrors.ErrCodeInvalidVersion,
			"Invalid version in batch", false, map[string]any{"error": err.Error()})
		return
	}

	serializer.RespondJSON(w, http.StatusOK, &sortResponse{
		Kind:     kind,
		Reverse:  req.Reverse,
		Count:    len(sorted),
		Versions: sorted,
	})
}

// parseKindParam validates the kind parameter, defaulting to semver.
func parseKindParam(kind string) (string, error) {
	switch kind {
	case "":
		return kindSemVer, nil
	case kindSemVer, kindCore:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown kind %q (must be %q or %q)", kind, kindSemVer, kindCore)
	}
}

// parseSortRequest decodes the request body with a size bound.
func parseSortRequest(w http.ResponseWriter, r *http.Request) (*sortRequest, error) {
	format := serializer.FormatJSON
	if ct := r.Header.Get("Content-Type"); strings.Contains(ct, "yaml") || strings.Contains(ct, "yml") {
		format = serializer.FormatYAML
	}

	body := http.MaxBytesReader(w, r.Body, defaults.MaxRequestBodyBytes)

	rd, err := serializer.NewReader(format, body)
	if err != nil {
		return nil, err
	}

	var req sortRequest
	if err := rd.Deserialize(&req); err != nil {
		return nil, err
	}
	return &req, nil
}

// decompose parses raw under the selected grammar and flattens the result.
func decompose(raw, kind string) (*parseResponse, error) {
	if kind == kindCore {
		v, err := version.ParseVersion(raw)
		if err != nil {
			return nil, err
		}
		return &parseResponse{
			Input:     raw,
			Kind:      kind,
			Canonical: v.String(),
			Major:     v.Major(),
			Minor:     v.Minor(),
			Patch:     v.Patch(),
		}, nil
	}

	v, err := version.ParseSemVer(raw)
	if err != nil {
		return nil, err
	}
	return &parseResponse{
		Input:      raw,
		Kind:       kind,
		Canonical:  v.String(),
		Major:      v.Major(),
		Minor:      v.Minor(),
		Patch:      v.Patch(),
		Prerelease: v.Prerelease(),
		Build:      v.Build(),
	}, nil
}

// compareVersions compares a and b under the selected grammar.
func compareVersions(a, b, kind string) (int, error) {
	if kind == kindCore {
		va, err := version.ParseVersion(a)
		if err != nil {
			return 0, fmt.Errorf("invalid core version %q: %w", a, err)
		}
		vb, err := version.ParseVersion(b)
		if err != nil {
			return 0, fmt.Errorf("invalid core version %q: %w", b, err)
		}
		return va.Compare(vb), nil
	}

	va, err := version.ParseSemVer(a)
	if err != nil {
		return 0, fmt.Errorf("invalid semantic version %q: %w", a, err)
	}
	vb, err := version.ParseSemVer(b)
	if err != nil {
		return 0, fmt.Errorf("invalid semantic version %q: %w", b, err)
	}
	return va.Compare(vb), nil
}

// relationWord maps a comparison result to the word used in responses.
func relationWord(result int) string {
	switch {
	case result < 0:
		return "older"
	case result > 0:
		return "newer"
	default:
		return "equal"
	}
}

// sortVersions orders the inputs by precedence and returns the original
// strings reordered. Parsing every entry up front keeps the comparator
// total; equal entries keep their input order either way.
func sortVersions(versions []string, kind string, reverse bool) ([]string, error) {
	cmp, err := comparatorFor(versions, kind)
	if err != nil {
		return nil, err
	}

	if reverse {
		forward := cmp
		cmp = func(i, j int) int { return forward(j, i) }
	}

	idx := make([]int, len(versions))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(i, j int) int { return cmp(i, j) })

	out := make([]string, len(versions))
	for n, i := range idx {
		out[n] = versions[i]
	}
	return out, nil
}

// comparatorFor builds an index comparator over versions for the grammar.
func comparatorFor(versions []string, kind string) (func(i, j int) int, error) {
	if kind == kindCore {
		parsed := make([]*version.Version, len(versions))
		for i, s := range versions {
			v, err := version.ParseVersion(s)
			if err != nil {
				return nil, fmt.Errorf("invalid core version %q: %w", s, err)
			}
			parsed[i] = v
		}
		return func(i, j int) int { return parsed[i].Compare(parsed[j]) }, nil
	}

	parsed := make([]*version.SemVer, len(versions))
	for i, s := range versions {
		v, err := version.ParseSemVer(s)
		if err != nil {
			return nil, fmt.Errorf("invalid semantic version %q: %w", s, err)
		}
		parsed[i] = v
	}
	return func(i, j int) int { return parsed[i].Compare(parsed[j]) }, nil
}
