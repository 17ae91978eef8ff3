package menu

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFetchWithoutTokenSkipsNetwork(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	defer srv.Close()

	snap := NewLoader(srv.URL, srv.Client()).Fetch(context.Background(), "")
	assert.Equal(t, StatusReady, snap.Status)
	assert.Empty(t, snap.Roots)
	assert.Zero(t, hits, "absent token must not hit the backend")
}

func TestFetchBuildsForestAndTagsToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/Menu/get-menus", r.URL.Path)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"menuId":"10","menuName":"Dashboard","path":"/","icon":"home","parentId":"","isActive":true},
			{"menuId":"20","menuName":"People","path":"/people","icon":"users","parentId":"","isActive":true},
			{"menuId":"21","menuName":"Employees","path":"/employees","icon":"users","parentId":"20","isActive":true}
		]`))
	}))
	defer srv.Close()

	snap := NewLoader(srv.URL, srv.Client()).Fetch(context.Background(), "tok-1")
	require.Equal(t, StatusReady, snap.Status)
	assert.Equal(t, "tok-1", snap.Token)
	require.Len(t, snap.Roots, 2)
	require.Len(t, snap.Roots[1].Children, 1)
	assert.Equal(t, "/app/employees", snap.Roots[1].Children[0].Path)
}

func TestFetchNormalizesTransportFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	snap := NewLoader(srv.URL, srv.Client()).Fetch(context.Background(), "expired")
	assert.Equal(t, StatusError, snap.Status)
	assert.NotEmpty(t, snap.Err)
	assert.Empty(t, snap.Roots, "tree stays empty on error")
}

func TestFetchNormalizesParseFailures(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"not":"an array"}`))
	}))
	defer srv.Close()

	snap := NewLoader(srv.URL, srv.Client()).Fetch(context.Background(), "tok")
	assert.Equal(t, StatusError, snap.Status)
	assert.NotEmpty(t, snap.Err)
}

func TestFetchEmptyListIsReadyNotError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	snap := NewLoader(srv.URL, srv.Client()).Fetch(context.Background(), "tok")
	assert.Equal(t, StatusReady, snap.Status)
	assert.Empty(t, snap.Roots)
}
