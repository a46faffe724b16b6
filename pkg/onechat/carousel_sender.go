package onechat

import (
	"context"

	"github.com/keepmind9/onechat/pkg/constants"
)

// ImageCarouselSender sends image carousels
type ImageCarouselSender struct {
	c *caller
}

// NewImageCarouselSender creates a carousel sender authorized with token
func NewImageCarouselSender(token string, opts ...Option) *ImageCarouselSender {
	return &ImageCarouselSender{c: newCaller(token, opts...)}
}

// SendImageCarousel sends a carousel built from elements
func (s *ImageCarouselSender) SendImageCarousel(ctx context.Context, to, botID string, elements []Element, notification string) Result {
	return s.c.postJSON(ctx, constants.ImageCarouselPath, imageCarouselPayload{
		To:                 to,
		BotID:              botID,
		Elements:           elementList(elements),
		CustomNotification: notification,
	})
}
