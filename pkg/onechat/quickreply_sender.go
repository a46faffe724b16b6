package onechat

import (
	"context"

	"github.com/keepmind9/onechat/pkg/constants"
)

// QuickReplySender sends text with reply options through push_quickreply
type QuickReplySender struct {
	c *caller
}

// NewQuickReplySender creates a quick-reply sender authorized with token
func NewQuickReplySender(token string, opts ...Option) *QuickReplySender {
	return &QuickReplySender{c: newCaller(token, opts...)}
}

// SendQuickReply sends message followed by the given reply options
func (s *QuickReplySender) SendQuickReply(ctx context.Context, to, botID, message string, options []Element, notification string) Result {
	return s.c.postJSON(ctx, constants.PushQuickReplyPath, quickReplyPayload{
		To:                 to,
		BotID:              botID,
		Message:            message,
		QuickReply:         elementList(options),
		CustomNotification: notification,
	})
}
