package onechat

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/keepmind9/onechat/pkg/constants"
	"github.com/sirupsen/logrus"
)

// MessageSender sends text, template, file and webview messages through the
// push_message endpoint.
type MessageSender struct {
	c *caller
}

// NewMessageSender creates a sender authorized with token (with or without the "Bearer " prefix)
func NewMessageSender(token string, opts ...Option) *MessageSender {
	return &MessageSender{c: newCaller(token, opts...)}
}

// SendMessage sends a text message
func (s *MessageSender) SendMessage(ctx context.Context, to, botID, message, notification string) Result {
	return s.c.postJSON(ctx, constants.PushMessagePath, textPayload{
		pushHeader: newPushHeader(to, botID, KindText, notification),
		Message:    message,
	})
}

// SendTemplate sends a template message
func (s *MessageSender) SendTemplate(ctx context.Context, to, botID string, elements []Element, notification string) Result {
	return s.c.postJSON(ctx, constants.PushMessagePath, templatePayload{
		pushHeader: newPushHeader(to, botID, KindTemplate, notification),
		Elements:   elementList(elements),
	})
}

// SendWebview sends a link that opens in-app. The URL must carry an http or
// https scheme; anything else fails locally without a request.
func (s *MessageSender) SendWebview(ctx context.Context, to, botID, url, notification string) Result {
	if !hasWebScheme(url) {
		return Fail(constants.MsgWebviewProtocol)
	}
	return s.c.postJSON(ctx, constants.PushMessagePath, webViewPayload{
		pushHeader: newPushHeader(to, botID, KindWebView, notification),
		URL:        url,
	})
}

// SendFile uploads the file at path as a multipart "file" part. The file is
// closed before SendFile returns.
func (s *MessageSender) SendFile(ctx context.Context, to, botID, path, notification string) Result {
	if strings.TrimSpace(path) == "" {
		return Fail(constants.MsgFilePathRequired)
	}

	f, err := os.Open(path)
	if err != nil {
		s.c.log.WithFields(logrus.Fields{
			"path":  path,
			"error": err,
		}).Warn("onechat-file-open-failed")
		return Fail(constants.MsgFileOpenPrefix + err.Error())
	}
	defer f.Close()

	return s.c.postMultipart(ctx, constants.PushMessagePath, fileForm(to, botID, notification), "file", filepath.Base(path), f)
}

func hasWebScheme(url string) bool {
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
