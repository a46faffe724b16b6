package onechat

import (
	"context"

	"github.com/keepmind9/onechat/pkg/constants"
	"github.com/sirupsen/logrus"
)

// BroadcastSender sends one text message to a list of recipients in a single
// request. Fan-out happens server-side.
type BroadcastSender struct {
	c *caller
}

// NewBroadcastSender creates a broadcast sender authorized with token
func NewBroadcastSender(token string, opts ...Option) *BroadcastSender {
	return &BroadcastSender{c: newCaller(token, opts...)}
}

// BroadcastMessage sends message to every recipient in to. Lists longer than
// MaxBroadcastRecipients fail locally.
func (s *BroadcastSender) BroadcastMessage(ctx context.Context, botID string, to []string, message string) Result {
	if len(to) > constants.MaxBroadcastRecipients {
		s.c.log.WithFields(logrus.Fields{
			"recipients": len(to),
			"max":        constants.MaxBroadcastRecipients,
		}).Warn("onechat-broadcast-rejected-too-many-recipients")
		return Fail(constants.MsgBroadcastOutOfRange)
	}

	return s.c.postJSON(ctx, constants.BroadcastGroupPath, broadcastPayload{
		BotID:   botID,
		To:      to,
		Message: message,
	})
}
