package onechat

import (
	"context"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
	"github.com/keepmind9/onechat/internal/logger"
	"github.com/keepmind9/onechat/pkg/constants"
	"github.com/sirupsen/logrus"
)

// RequestIDHeader carries a per-call UUID so client and server logs can be joined
const RequestIDHeader = "X-Request-Id"

// Option customises how a sender talks to the API
type Option func(*options)

type options struct {
	baseURL        string
	connectTimeout time.Duration
	readTimeout    time.Duration
	httpClient     *http.Client
	logger         *logrus.Logger
}

// WithBaseURL points the client at another host. Useful for tests and staging.
func WithBaseURL(baseURL string) Option {
	return func(o *options) {
		if baseURL != "" {
			o.baseURL = strings.TrimRight(baseURL, "/")
		}
	}
}

// WithTimeouts overrides the connect and read timeouts. Zero keeps the default.
func WithTimeouts(connect, read time.Duration) Option {
	return func(o *options) {
		if connect > 0 {
			o.connectTimeout = connect
		}
		if read > 0 {
			o.readTimeout = read
		}
	}
}

// WithHTTPClient supplies the underlying http.Client. Its own timeouts and
// transport are used as-is.
func WithHTTPClient(client *http.Client) Option {
	return func(o *options) {
		if client != nil {
			o.httpClient = client
		}
	}
}

// WithLogger sets the logger used for request logging
func WithLogger(l *logrus.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func buildOptions(opts []Option) options {
	o := options{
		baseURL:        constants.DefaultBaseURL,
		connectTimeout: constants.DefaultConnectTimeout,
		readTimeout:    constants.DefaultReadTimeout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if o.logger == nil {
		o.logger = logger.GetLogger()
	}
	return o
}

// caller performs single POST exchanges against the API. It never retries.
type caller struct {
	token   string
	baseURL string
	http    *resty.Client
	log     *logrus.Logger
}

func newCaller(token string, opts ...Option) *caller {
	o := buildOptions(opts)
	token = NormalizeToken(token)

	var rc *resty.Client
	if o.httpClient != nil {
		rc = resty.NewWithClient(o.httpClient)
	} else {
		rc = resty.New()
		rc.SetTransport(&http.Transport{
			Proxy: http.ProxyFromEnvironment,
			DialContext: (&net.Dialer{
				Timeout:   o.connectTimeout,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   o.connectTimeout,
			ResponseHeaderTimeout: o.readTimeout,
			MaxIdleConns:          10,
			IdleConnTimeout:       90 * time.Second,
		})
		rc.SetTimeout(o.connectTimeout + o.readTimeout)
	}
	rc.SetBaseURL(o.baseURL)
	rc.SetAuthToken(token)
	rc.SetRetryCount(0)
	rc.SetLogger(o.logger)

	return &caller{
		token:   token,
		baseURL: o.baseURL,
		http:    rc,
		log:     o.logger,
	}
}

// postJSON sends payload as a JSON body
func (c *caller) postJSON(ctx context.Context, path string, payload any) Result {
	req := c.newRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload)
	return c.do(req, path)
}

// postMultipart sends form fields plus one file part. Content-Type is left to
// the multipart writer.
func (c *caller) postMultipart(ctx context.Context, path string, form map[string]string, field, fileName string, file io.Reader) Result {
	req := c.newRequest(ctx).
		SetFormData(form).
		SetFileReader(field, fileName, file)
	return c.do(req, path)
}

func (c *caller) newRequest(ctx context.Context) *resty.Request {
	if ctx == nil {
		ctx = context.Background()
	}
	return c.http.R().
		SetContext(ctx).
		SetHeader(RequestIDHeader, uuid.NewString())
}

func (c *caller) do(req *resty.Request, path string) Result {
	entry := c.log.WithFields(logrus.Fields{
		"endpoint":   path,
		"request_id": req.Header.Get(RequestIDHeader),
		"token":      maskSecret(c.token),
	})
	entry.Debug("onechat-request-sent")

	start := time.Now()
	resp, err := req.Post(path)
	if err != nil {
		entry.WithField("error", err).Warn("onechat-request-failed")
		return transportFailure(err)
	}

	entry = entry.WithFields(logrus.Fields{
		"status_code": resp.StatusCode(),
		"duration_ms": time.Since(start).Milliseconds(),
	})

	if resp.StatusCode() == http.StatusOK {
		res := successResult(resp.StatusCode(), resp.Body())
		entry.WithField("status", res.Status).Debug("onechat-request-completed")
		return res
	}

	res := normalizeError(resp.StatusCode(), resp.Body())
	entry.WithFields(logrus.Fields{
		"status":  res.Status,
		"message": res.Message,
	}).Warn("onechat-request-rejected")
	return res
}
