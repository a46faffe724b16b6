// Package onechat is a client for the OneChat bot messaging API.
//
// Every operation is one HTTP POST. The outcome comes back as a Result value:
// either the decoded response body or a normalized {status, message} failure.
// Network errors, non-200 responses and local validation failures all take
// the failure shape, so callers branch on one thing.
//
// # Usage
//
// Build a Client once and pass it around:
//
//	client := onechat.New(os.Getenv("ONECHAT_TOKEN"))
//	res := client.SendMessage(ctx, "U123", "B456", "Hello", "")
//	if res.Failed() {
//	    log.Printf("send failed: %s", res.Message)
//	}
//
// To avoid repeating the recipient and bot ID, wrap the client in a Session:
//
//	session := onechat.NewSession(client, onechat.Defaults{To: "U123", BotID: "B456"})
//	res, err := session.SendMessage(ctx, onechat.Target{}, "Hello")
//
// Init installs a process-wide Session for the package-level functions
// (SendMessage, BroadcastMessage, ListFriendIDs, ...). Those return
// ErrNotInitialized until Init has been called.
//
// # Concurrency
//
// A Client is safe for concurrent use. Each sender owns its own HTTP
// connection pool. Nothing is retried.
package onechat

import (
	"context"
	"fmt"
)

// Client aggregates every sender and reader behind one value
type Client struct {
	messages     *MessageSender
	broadcasts   *BroadcastSender
	locations    *LocationSender
	stickers     *StickerSender
	quickReplies *QuickReplySender
	carousels    *ImageCarouselSender
	rooms        *RoomReader
}

// New creates a Client. token may carry the "Bearer " prefix.
func New(token string, opts ...Option) *Client {
	return &Client{
		messages:     NewMessageSender(token, opts...),
		broadcasts:   NewBroadcastSender(token, opts...),
		locations:    NewLocationSender(token, opts...),
		stickers:     NewStickerSender(token, opts...),
		quickReplies: NewQuickReplySender(token, opts...),
		carousels:    NewImageCarouselSender(token, opts...),
		rooms:        NewRoomReader(token, opts...),
	}
}

// Send delivers any message variant to one recipient
func (c *Client) Send(ctx context.Context, to, botID string, msg Message) Result {
	switch m := valueOf(msg).(type) {
	case Text:
		return c.SendMessage(ctx, to, botID, m.Message, m.Notification)
	case Template:
		return c.SendTemplate(ctx, to, botID, m.Elements, m.Notification)
	case File:
		return c.SendFile(ctx, to, botID, m.Path, m.Notification)
	case WebView:
		return c.SendWebview(ctx, to, botID, m.URL, m.Notification)
	case Location:
		return c.SendLocation(ctx, to, botID, m.Latitude, m.Longitude, m.Address, m.Notification)
	case Sticker:
		return c.SendSticker(ctx, to, botID, m.StickerID, m.Notification)
	case QuickReply:
		return c.SendQuickReply(ctx, to, botID, m.Message, m.Options, m.Notification)
	case ImageCarousel:
		return c.SendImageCarousel(ctx, to, botID, m.Elements, m.Notification)
	case nil:
		return Fail("message is required.")
	default:
		return Fail(fmt.Sprintf("unsupported message kind %q.", msg.Kind()))
	}
}

// SendMessage sends a text message
func (c *Client) SendMessage(ctx context.Context, to, botID, message, notification string) Result {
	return c.messages.SendMessage(ctx, to, botID, message, notification)
}

// SendTemplate sends a template message
func (c *Client) SendTemplate(ctx context.Context, to, botID string, elements []Element, notification string) Result {
	return c.messages.SendTemplate(ctx, to, botID, elements, notification)
}

// SendFile uploads a file
func (c *Client) SendFile(ctx context.Context, to, botID, path, notification string) Result {
	return c.messages.SendFile(ctx, to, botID, path, notification)
}

// SendWebview sends an in-app link
func (c *Client) SendWebview(ctx context.Context, to, botID, url, notification string) Result {
	return c.messages.SendWebview(ctx, to, botID, url, notification)
}

// SendLocation sends a location pin
func (c *Client) SendLocation(ctx context.Context, to, botID, latitude, longitude, address, notification string) Result {
	return c.locations.SendLocation(ctx, to, botID, latitude, longitude, address, notification)
}

// SendSticker sends a sticker
func (c *Client) SendSticker(ctx context.Context, to, botID, stickerID, notification string) Result {
	return c.stickers.SendSticker(ctx, to, botID, stickerID, notification)
}

// SendQuickReply sends text with reply options
func (c *Client) SendQuickReply(ctx context.Context, to, botID, message string, options []Element, notification string) Result {
	return c.quickReplies.SendQuickReply(ctx, to, botID, message, options, notification)
}

// SendImageCarousel sends an image carousel
func (c *Client) SendImageCarousel(ctx context.Context, to, botID string, elements []Element, notification string) Result {
	return c.carousels.SendImageCarousel(ctx, to, botID, elements, notification)
}

// BroadcastMessage sends one text to up to MaxBroadcastRecipients recipients
func (c *Client) BroadcastMessage(ctx context.Context, botID string, to []string, message string) Result {
	return c.broadcasts.BroadcastMessage(ctx, botID, to, message)
}

// FetchFriendsAndGroups returns the raw friends and groups listing
func (c *Client) FetchFriendsAndGroups(ctx context.Context, botID string) Result {
	return c.rooms.FetchFriendsAndGroups(ctx, botID)
}

// ListAllFriends returns the bot's friends
func (c *Client) ListAllFriends(ctx context.Context, botID string) ([]Friend, error) {
	return c.rooms.ListAllFriends(ctx, botID)
}

// ListFriendIDs returns the one_id of each friend
func (c *Client) ListFriendIDs(ctx context.Context, botID string) ([]string, error) {
	return c.rooms.ListFriendIDs(ctx, botID)
}

// ListAllGroups returns the bot's groups
func (c *Client) ListAllGroups(ctx context.Context, botID string) ([]Group, error) {
	return c.rooms.ListAllGroups(ctx, botID)
}

// ListGroupIDs returns the group_id of each group
func (c *Client) ListGroupIDs(ctx context.Context, botID string) ([]string, error) {
	return c.rooms.ListGroupIDs(ctx, botID)
}
