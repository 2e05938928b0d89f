package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/dmitrijs2005/gophsession/internal/client/client"
	"github.com/dmitrijs2005/gophsession/internal/client/config"
	"github.com/dmitrijs2005/gophsession/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/gophsession/internal/client/tokenstore"
	"github.com/dmitrijs2005/gophsession/internal/logging"
	"github.com/stretchr/testify/require"
)

type reply struct {
	status int
	body   string
}

// apiStub answers each path with a fixed reply and counts hits.
type apiStub struct {
	mu      sync.Mutex
	replies map[string]reply
	hits    map[string]int
}

func (s *apiStub) count(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[path]
}

func newAPI(t *testing.T, replies map[string]reply) (*apiStub, string) {
	t.Helper()
	stub := &apiStub{replies: replies, hits: map[string]int{}}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		stub.mu.Lock()
		stub.hits[r.URL.Path]++
		rep, ok := stub.replies[r.URL.Path]
		stub.mu.Unlock()
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(rep.status)
		_, _ = io.WriteString(w, rep.body)
	}))
	t.Cleanup(srv.Close)
	return stub, srv.URL
}

// newTestApp builds an App over a memory store and the given API URL.
func newTestApp(t *testing.T, apiURL string) (*App, *tokenstore.Store) {
	t.Helper()
	c, err := client.NewHTTPClient(apiURL)
	require.NoError(t, err)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.APIBaseURL = apiURL
	cfg.StoreDriver = config.DriverMemory

	store := tokenstore.New(localstorage.NewMemoryRepository())
	app := newApp(cfg, logging.Nop(), store, c, bufio.NewReader(strings.NewReader("")), io.Discard)
	t.Cleanup(app.Close)
	return app, store
}

// capturePrint swaps printlnFn for a recorder and returns the recorded lines.
func capturePrint(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	orig := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = orig })
	return &lines
}

func stubInputs(t *testing.T, email string, passwords ...string) {
	t.Helper()
	origST, origGP := getSimpleText, getPassword
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return email, nil }
	i := 0
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		pw := passwords[i%len(passwords)]
		i++
		return []byte(pw), nil
	}
	t.Cleanup(func() {
		getSimpleText = origST
		getPassword = origGP
	})
}

func seedToken(t *testing.T, store *tokenstore.Store, tok string) {
	t.Helper()
	require.NoError(t, store.Set(context.Background(), tokenstore.KeyAccessToken, tok))
}
