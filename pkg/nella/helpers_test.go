package nella

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zini/nella/pkg/api"
	"github.com/zini/nella/pkg/tokencache/memory"
)

// fakeBackend is an httptest server speaking just enough of the Nella
// protocol for client tests. Tests register extra API handlers on mux.
type fakeBackend struct {
	mux *http.ServeMux
	srv *httptest.Server

	// auth endpoint behavior
	authStatus  int
	authBody    any
	expiresIn   int64
	accessToken string

	// observed traffic
	tokenPosts int
	authForms  []map[string]string
}

func newFakeBackend(t *testing.T) *fakeBackend {
	t.Helper()

	b := &fakeBackend{
		mux:         http.NewServeMux(),
		authStatus:  http.StatusOK,
		expiresIn:   7200,
		accessToken: "fresh-token",
	}

	b.mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseForm())

		b.tokenPosts++
		b.authForms = append(b.authForms, map[string]string{
			"username":   r.PostFormValue("username"),
			"password":   r.PostFormValue("password"),
			"grant_type": r.PostFormValue("grant_type"),
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(b.authStatus)

		if b.authStatus == http.StatusOK {
			_ = json.NewEncoder(w).Encode(api.TokenResponse{
				AccessToken: b.accessToken,
				TokenType:   "bearer",
				ExpiresIn:   b.expiresIn,
			})
			return
		}
		if b.authBody != nil {
			if s, ok := b.authBody.(string); ok {
				_, _ = w.Write([]byte(s))
			} else {
				_ = json.NewEncoder(w).Encode(b.authBody)
			}
		}
	})

	b.srv = httptest.NewServer(b.mux)
	t.Cleanup(b.srv.Close)

	return b
}

// handleAPI registers a handler under the API root
func (b *fakeBackend) handleAPI(path string, handler http.HandlerFunc) {
	b.mux.HandleFunc("/api/v1/"+path, handler)
}

// newTestClient builds a client over an in-memory token cache pointed at
// the fake backend
func newTestClient(t *testing.T, b *fakeBackend) (*Client, *memory.Store) {
	t.Helper()
	store := memory.New()
	client := NewClient(store, WithBaseURL(b.srv.URL))
	return client, store
}

// okJSON writes v as a 200 JSON response
func okJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
