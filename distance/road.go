// Package distance - road-network provider with great-circle fallback.
//
// Road queries an OSRM-compatible routing service for a full distance table
// over the point collection. Any failure — transport error, non-2xx status,
// malformed payload, wrong matrix shape — degrades to the great-circle
// matrix instead of failing the caller's configuration step. The degradation
// is observable through the injected logger, never through an error.
package distance

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/katalvlaran/antcolony/matrix"
)

// defaultRoadTimeout bounds a single table request when the caller supplies
// no http.Client of their own.
const defaultRoadTimeout = 30 * time.Second

// roadTableResponse mirrors the routing service's table payload.
// Unroutable pairs arrive as null and decode to nil entries.
type roadTableResponse struct {
	Code      string       `json:"code"`
	Distances [][]*float64 `json:"distances"`
}

// Road is a distance provider backed by an OSRM-compatible /table endpoint.
// Zero-value fields are replaced by defaults in Matrix; the struct is safe
// to copy and reuse across calls.
type Road struct {
	// BaseURL is the routing service root, e.g. "https://router.project-osrm.org".
	BaseURL string
	// Client is the HTTP client used for table requests; a default client
	// with defaultRoadTimeout is used when nil.
	Client *http.Client
	// Logger receives fallback notices; slog.Default() is used when nil.
	Logger *slog.Logger
}

// compile-time interface conformance check
var _ Provider = Road{}

// Matrix fetches the road-distance table for points, falling back to the
// great-circle matrix on any failure.
//
// Contracts:
//   - points must be non-empty with unique IDs (ErrNoPoints / ErrDuplicateID);
//     precondition violations are real errors, not fallback cases.
//   - The returned matrix passes matrix.ValidateDistance; road tables may be
//     asymmetric.
//   - ctx bounds the whole lookup; ctx cancellation also falls back (the
//     caller asked for a matrix, and great-circle needs no I/O).
//
// Complexity: O(n²) decode/copy plus one HTTP round trip.
func (r Road) Matrix(ctx context.Context, points []Point) (*matrix.Dense, error) {
	if err := validatePoints(points); err != nil {
		return nil, err
	}

	m, err := r.fetchTable(ctx, points)
	if err == nil {
		return m, nil
	}

	// Fallback policy: substitute great-circle and proceed.
	r.logger().Warn("road distance lookup failed; falling back to great-circle",
		"base_url", r.BaseURL,
		"points", len(points),
		"error", err,
	)

	return GreatCircle{}.Matrix(ctx, points)
}

// fetchTable performs the table request and converts the payload into a
// validated *matrix.Dense. All errors funnel into the fallback in Matrix.
func (r Road) fetchTable(ctx context.Context, points []Point) (*matrix.Dense, error) {
	var n = len(points)

	// Build "lng,lat;lng,lat;..." — routing services take lng-first pairs.
	coords := make([]string, n)
	var i int
	for i = 0; i < n; i++ {
		coords[i] = fmt.Sprintf("%.6f,%.6f", points[i].Y, points[i].X)
	}
	queryURL := fmt.Sprintf("%s/table/v1/driving/%s?annotations=distance",
		strings.TrimRight(r.BaseURL, "/"), strings.Join(coords, ";"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build table request: %w", err)
	}

	resp, err := r.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("table request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Drain a little of the body for the log line, then fail.
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("table request: HTTP %d: %s", resp.StatusCode, string(body))
	}

	var table roadTableResponse
	if err = json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return nil, fmt.Errorf("decode table response: %w", err)
	}
	if table.Code != "Ok" {
		return nil, fmt.Errorf("table response code %q", table.Code)
	}
	if len(table.Distances) != n {
		return nil, fmt.Errorf("table shape: got %d rows, want %d", len(table.Distances), n)
	}

	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		j    int
		cell *float64
	)
	for i = 0; i < n; i++ {
		if len(table.Distances[i]) != n {
			return nil, fmt.Errorf("table shape: row %d has %d cols, want %d", i, len(table.Distances[i]), n)
		}
		for j = 0; j < n; j++ {
			cell = table.Distances[i][j]
			if cell == nil {
				// Unroutable pair; the table is incomplete for our purposes.
				return nil, fmt.Errorf("table entry (%d,%d) is null", i, j)
			}
			_ = m.Set(i, j, *cell)
		}
	}

	// Structural validation (zero diagonal, finite, non-negative).
	if _, err = matrix.ValidateDistance(m); err != nil {
		return nil, fmt.Errorf("table matrix invalid: %w", err)
	}

	return m, nil
}

// client returns the configured HTTP client or a bounded default.
func (r Road) client() *http.Client {
	if r.Client != nil {
		return r.Client
	}

	return &http.Client{Timeout: defaultRoadTimeout}
}

// logger returns the configured logger or the process default.
func (r Road) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.Default()
}
