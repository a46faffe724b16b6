package onechat

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

const testToken = "test-token-1234567890"

// capturedRequest is what the fake API saw for one call
type capturedRequest struct {
	Path        string
	Header      http.Header
	JSON        map[string]any
	Form        map[string]string
	FileName    string
	FileContent []byte
}

// fakeAPI is an httptest server that records requests and replies with a fixed response
type fakeAPI struct {
	*httptest.Server

	mu       sync.Mutex
	requests []capturedRequest
	status   int
	body     string
	delay    time.Duration
}

func newFakeAPI(t *testing.T, status int, body string) *fakeAPI {
	t.Helper()
	f := &fakeAPI{status: status, body: body}
	f.Server = httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(f.Close)
	return f
}

func (f *fakeAPI) handle(w http.ResponseWriter, r *http.Request) {
	c := capturedRequest{Path: r.URL.Path, Header: r.Header.Clone()}

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err == nil {
			c.Form = make(map[string]string)
			for k, v := range r.MultipartForm.Value {
				c.Form[k] = v[0]
			}
			if files := r.MultipartForm.File["file"]; len(files) > 0 {
				c.FileName = files[0].Filename
				if fh, err := files[0].Open(); err == nil {
					c.FileContent, _ = io.ReadAll(fh)
					fh.Close()
				}
			}
		}
	} else {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &c.JSON)
	}

	f.mu.Lock()
	f.requests = append(f.requests, c)
	delay := f.delay
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(f.status)
	io.WriteString(w, f.body)
}

func (f *fakeAPI) setDelay(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.delay = d
}

func (f *fakeAPI) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func (f *fakeAPI) last(t *testing.T) capturedRequest {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	require.NotEmpty(t, f.requests, "expected at least one request")
	return f.requests[len(f.requests)-1]
}

func (f *fakeAPI) options() []Option {
	return []Option{WithBaseURL(f.URL), WithLogger(quietLogger())}
}

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
