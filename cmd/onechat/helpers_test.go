package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keepmind9/onechat/internal/logger"
	"github.com/keepmind9/onechat/pkg/onechat"
)

const (
	testToken   = "test-token-1234567890"
	successBody = `{"status":"success","message":"ok"}`
	roomsBody   = `{"status":"success","list_friend":[{"one_id":"U1","display_name":"Ann"}],"list_group":[{"group_id":"G1","group_name":"Team"}]}`
)

type apiRequest struct {
	Path          string
	Authorization string
	ContentType   string
	JSON          map[string]any
}

// fakeAPI answers room listings with roomsBody and everything else with successBody
type fakeAPI struct {
	mu       sync.Mutex
	server   *httptest.Server
	status   int
	body     string
	requests []apiRequest
}

func newFakeAPI(t *testing.T) *fakeAPI {
	t.Helper()
	api := &fakeAPI{status: http.StatusOK}
	api.server = httptest.NewServer(http.HandlerFunc(api.handle))
	t.Cleanup(api.server.Close)
	return api
}

func (a *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	req := apiRequest{
		Path:          r.URL.Path,
		Authorization: r.Header.Get("Authorization"),
		ContentType:   r.Header.Get("Content-Type"),
	}
	if strings.HasPrefix(req.ContentType, "application/json") {
		_ = json.NewDecoder(r.Body).Decode(&req.JSON)
	}

	a.mu.Lock()
	a.requests = append(a.requests, req)
	status, body := a.status, a.body
	a.mu.Unlock()

	if body == "" {
		body = successBody
		if r.URL.Path == "/manage/api/v1/getlistroom" {
			body = roomsBody
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(body))
}

func (a *fakeAPI) respond(status int, body string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.status, a.body = status, body
}

func (a *fakeAPI) calls() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.requests)
}

func (a *fakeAPI) last(t *testing.T) apiRequest {
	t.Helper()
	a.mu.Lock()
	defer a.mu.Unlock()
	require.NotEmpty(t, a.requests, "no request reached the fake API")
	return a.requests[len(a.requests)-1]
}

// isolateEnv unsets every ONECHAT_* variable and restores global state afterwards
func isolateEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ONECHAT_TOKEN", "ONECHAT_TO", "ONECHAT_BOT_ID", "ONECHAT_BASE_URL",
		"ONECHAT_CONNECT_TIMEOUT", "ONECHAT_READ_TIMEOUT",
		"ONECHAT_LOG_LEVEL", "ONECHAT_LOG_FORMAT", "ONECHAT_LOG_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}

	prev := logger.GetLogger()
	t.Cleanup(func() {
		logger.SetLogger(prev)
		onechat.SetDefault(nil)
	})
}

// writeConfig writes a config pointing at api, followed by extra YAML lines
func writeConfig(t *testing.T, api *fakeAPI, extra string) string {
	t.Helper()
	isolateEnv(t)
	content := fmt.Sprintf("token: %q\nbase_url: %q\n%s", testToken, api.server.URL, extra)
	path := filepath.Join(t.TempDir(), "onechat.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// execute runs a fresh command tree and returns what it printed to stdout
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}
