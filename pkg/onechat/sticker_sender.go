package onechat

import (
	"context"

	"github.com/keepmind9/onechat/pkg/constants"
)

// StickerSender sends stickers through push_message
type StickerSender struct {
	c *caller
}

// NewStickerSender creates a sticker sender authorized with token
func NewStickerSender(token string, opts ...Option) *StickerSender {
	return &StickerSender{c: newCaller(token, opts...)}
}

// SendSticker sends the sticker identified by stickerID
func (s *StickerSender) SendSticker(ctx context.Context, to, botID, stickerID, notification string) Result {
	return s.c.postJSON(ctx, constants.PushMessagePath, stickerPayload{
		pushHeader: newPushHeader(to, botID, KindSticker, notification),
		StickerID:  stickerID,
	})
}
