package onechat

import (
	"encoding/json"
	"fmt"

	"github.com/keepmind9/onechat/pkg/constants"
)

// Result is the outcome of one API call. It is either a success carrying the
// decoded response body, or a failure carrying a status and a human-readable
// message. Remote, transport and local validation failures all surface here;
// none of them are returned as Go errors.
type Result struct {
	Status     string         // body "status" on success, normalized status on failure
	Message    string         // body "message" if present
	Body       map[string]any // decoded response body, nil on failure
	StatusCode int            // HTTP status, 0 when no response was received

	raw    []byte
	failed bool
}

// APIError is the error form of a failed or non-success Result
type APIError struct {
	Status     string
	Message    string
	StatusCode int
}

func (e *APIError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("onechat: %s (http %d): %s", e.Status, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("onechat: %s: %s", e.Status, e.Message)
}

// Fail builds a failure Result with status "fail"
func Fail(message string) Result {
	return Result{Status: constants.StatusFail, Message: message, failed: true}
}

// Failed reports whether the call produced a failure record rather than a decoded body
func (r Result) Failed() bool {
	return r.failed
}

// Succeeded reports whether the call returned a body whose status is "success"
func (r Result) Succeeded() bool {
	return !r.failed && r.Status == constants.StatusSuccess
}

// Err returns nil for a successful result and an *APIError otherwise
func (r Result) Err() error {
	if r.Succeeded() {
		return nil
	}
	e := &APIError{Status: r.Status, Message: r.Message, StatusCode: r.StatusCode}
	if e.Status == "" {
		e.Status = constants.StatusFail
	}
	if e.Message == "" {
		e.Message = constants.MsgUnknownError
	}
	return e
}

// Decode unmarshals the raw success body into v
func (r Result) Decode(v any) error {
	if r.failed {
		return r.Err()
	}
	return json.Unmarshal(r.raw, v)
}

// MarshalJSON renders a failure as {"status","message"} and a success as the
// body the server sent.
func (r Result) MarshalJSON() ([]byte, error) {
	if r.failed || r.raw == nil {
		return json.Marshal(struct {
			Status  string `json:"status"`
			Message string `json:"message"`
		}{r.Status, r.Message})
	}
	return r.raw, nil
}

func successResult(statusCode int, body []byte) Result {
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil || decoded == nil {
		res := Fail(constants.MsgInvalidResponse)
		res.StatusCode = statusCode
		return res
	}
	return Result{
		Status:     stringField(decoded, "status", ""),
		Message:    stringField(decoded, "message", ""),
		Body:       decoded,
		StatusCode: statusCode,
		raw:        body,
	}
}

// normalizeError turns a non-200 response into a failure, passing through the
// server's status and message when the body carries them.
func normalizeError(statusCode int, body []byte) Result {
	var decoded map[string]any
	if err := json.Unmarshal(body, &decoded); err != nil || decoded == nil {
		res := Fail(constants.MsgInvalidResponse)
		res.StatusCode = statusCode
		return res
	}
	return Result{
		Status:     stringField(decoded, "status", constants.StatusFail),
		Message:    stringField(decoded, "message", constants.MsgUnknownError),
		StatusCode: statusCode,
		failed:     true,
	}
}

func transportFailure(err error) Result {
	return Fail(constants.MsgRequestFailedPrefix + err.Error())
}

func stringField(m map[string]any, key, fallback string) string {
	v, ok := m[key]
	if !ok || v == nil {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
