// Package distance_test exercises the Road provider against a stub routing
// service, including every fallback path.
package distance_test

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/katalvlaran/antcolony/distance"
	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

// quietLogger drops all records so fallback notices do not pollute test output.
func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// geoPair is a two-point geographic instance ~157 km apart on the equator/meridian.
func geoPair() []distance.Point {
	return []distance.Point{
		{ID: "p0", X: 0, Y: 0},
		{ID: "p1", X: 1, Y: 1},
	}
}

// TestRoadTableSuccess serves a valid table and expects its exact values,
// asymmetry included.
func TestRoadTableSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// The table endpoint takes lng-first pairs and a distance annotation.
		require.True(t, strings.HasPrefix(r.URL.Path, "/table/v1/driving/"))
		require.Equal(t, "distance", r.URL.Query().Get("annotations"))

		fmt.Fprint(w, `{"code":"Ok","distances":[[0,1500.5],[1600.25,0]]}`)
	}))
	defer srv.Close()

	road := distance.Road{BaseURL: srv.URL, Logger: quietLogger()}
	m, err := road.Matrix(context.Background(), geoPair())
	require.NoError(t, err)

	v, err := m.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 1500.5, v)

	v, err = m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 1600.25, v) // asymmetric road matrix is preserved
}

// TestRoadFallbacks drives each failure mode and expects the great-circle
// matrix in every case.
func TestRoadFallbacks(t *testing.T) {
	want, err := distance.GreatCircle{}.Matrix(context.Background(), geoPair())
	require.NoError(t, err)
	wantD, err := want.At(0, 1)
	require.NoError(t, err)

	cases := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "http error status",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				http.Error(w, "boom", http.StatusBadGateway)
			},
		},
		{
			name: "malformed json",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"code":"Ok","distances":[[0,`)
			},
		},
		{
			name: "service-level error code",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"code":"NoTable"}`)
			},
		},
		{
			name: "wrong matrix shape",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"code":"Ok","distances":[[0,1,2],[1,0,2],[2,2,0]]}`)
			},
		},
		{
			name: "null entry",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"code":"Ok","distances":[[0,null],[5,0]]}`)
			},
		},
		{
			name: "negative distance",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				fmt.Fprint(w, `{"code":"Ok","distances":[[0,-3],[5,0]]}`)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(tc.handler)
			defer srv.Close()

			road := distance.Road{BaseURL: srv.URL, Logger: quietLogger()}
			m, merr := road.Matrix(context.Background(), geoPair())
			require.NoError(t, merr) // fallback, not failure

			got, aerr := m.At(0, 1)
			require.NoError(t, aerr)
			require.Equal(t, wantD, got) // great-circle substitution
		})
	}
}

// TestRoadUnreachable falls back when the service cannot be reached at all.
func TestRoadUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // immediately closed: connection refused

	road := distance.Road{BaseURL: srv.URL, Logger: quietLogger()}
	m, err := road.Matrix(context.Background(), geoPair())
	require.NoError(t, err)

	n, err := matrix.ValidateDistance(m)
	require.NoError(t, err)
	require.Equal(t, 2, n)
}

// TestRoadPreconditions verifies that bad point collections surface as real
// errors rather than fallbacks.
func TestRoadPreconditions(t *testing.T) {
	road := distance.Road{BaseURL: "http://invalid.example", Logger: quietLogger()}

	_, err := road.Matrix(context.Background(), nil)
	require.ErrorIs(t, err, distance.ErrNoPoints)

	dup := []distance.Point{{ID: "x"}, {ID: "x"}}
	_, err = road.Matrix(context.Background(), dup)
	require.ErrorIs(t, err, distance.ErrDuplicateID)
}
