package onechat

import (
	"context"

	"github.com/keepmind9/onechat/pkg/constants"
)

// LocationSender shares map locations through push_message
type LocationSender struct {
	c *caller
}

// NewLocationSender creates a location sender authorized with token
func NewLocationSender(token string, opts ...Option) *LocationSender {
	return &LocationSender{c: newCaller(token, opts...)}
}

// SendLocation sends a location pin with a display address
func (s *LocationSender) SendLocation(ctx context.Context, to, botID, latitude, longitude, address, notification string) Result {
	return s.c.postJSON(ctx, constants.PushMessagePath, locationPayload{
		pushHeader: newPushHeader(to, botID, KindLocation, notification),
		Latitude:   latitude,
		Longitude:  longitude,
		Address:    address,
	})
}
