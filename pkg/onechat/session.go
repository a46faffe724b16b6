package onechat

import (
	"context"
	"errors"
)

var (
	// ErrNotInitialized is returned by package-level functions before Init
	ErrNotInitialized = errors.New("onechat is not initialized: call Init(token, defaults) first")
	// ErrMissingTarget means neither the call nor the defaults named a recipient and bot
	ErrMissingTarget = errors.New("both 'to' and 'bot_id' must be provided either in defaults or when calling this method")
	// ErrMissingBotID means neither the call nor the defaults named a bot
	ErrMissingBotID = errors.New("bot ID must be provided either in defaults or when calling this method")
)

// Defaults are the recipient and bot used when a call leaves them empty
type Defaults struct {
	To    string
	BotID string
}

// Target names the recipient and bot for one call. Empty fields fall back to
// the session defaults.
type Target struct {
	To    string
	BotID string
}

// Session pairs a Client with Defaults
type Session struct {
	client   *Client
	defaults Defaults
}

// NewSession wraps client with defaults
func NewSession(client *Client, defaults Defaults) *Session {
	return &Session{client: client, defaults: defaults}
}

// Client returns the underlying client
func (s *Session) Client() *Client {
	return s.client
}

// Defaults returns the session defaults
func (s *Session) Defaults() Defaults {
	return s.defaults
}

func (s *Session) resolve(t Target) (Target, error) {
	if t.To == "" {
		t.To = s.defaults.To
	}
	if t.BotID == "" {
		t.BotID = s.defaults.BotID
	}
	if t.To == "" || t.BotID == "" {
		return t, ErrMissingTarget
	}
	return t, nil
}

func (s *Session) resolveBot(botID string) (string, error) {
	if botID == "" {
		botID = s.defaults.BotID
	}
	if botID == "" {
		return "", ErrMissingBotID
	}
	return botID, nil
}

// Send delivers msg after resolving t against the defaults
func (s *Session) Send(ctx context.Context, t Target, msg Message) (Result, error) {
	t, err := s.resolve(t)
	if err != nil {
		return Result{}, err
	}
	return s.client.Send(ctx, t.To, t.BotID, msg), nil
}

// SendMessage sends a text message
func (s *Session) SendMessage(ctx context.Context, t Target, message string) (Result, error) {
	return s.Send(ctx, t, Text{Message: message})
}

// SendTemplate sends a template message
func (s *Session) SendTemplate(ctx context.Context, t Target, elements []Element) (Result, error) {
	return s.Send(ctx, t, Template{Elements: elements})
}

// SendFile uploads the file at path
func (s *Session) SendFile(ctx context.Context, t Target, path string) (Result, error) {
	return s.Send(ctx, t, File{Path: path})
}

// SendWebview sends an in-app link
func (s *Session) SendWebview(ctx context.Context, t Target, url string) (Result, error) {
	return s.Send(ctx, t, WebView{URL: url})
}

// SendLocation sends a location pin
func (s *Session) SendLocation(ctx context.Context, t Target, latitude, longitude, address string) (Result, error) {
	return s.Send(ctx, t, Location{Latitude: latitude, Longitude: longitude, Address: address})
}

// SendSticker sends a sticker
func (s *Session) SendSticker(ctx context.Context, t Target, stickerID string) (Result, error) {
	return s.Send(ctx, t, Sticker{StickerID: stickerID})
}

// SendQuickReply sends text with reply options
func (s *Session) SendQuickReply(ctx context.Context, t Target, message string, options []Element) (Result, error) {
	return s.Send(ctx, t, QuickReply{Message: message, Options: options})
}

// SendImageCarousel sends an image carousel
func (s *Session) SendImageCarousel(ctx context.Context, t Target, elements []Element) (Result, error) {
	return s.Send(ctx, t, ImageCarousel{Elements: elements})
}

// BroadcastMessage sends message to every recipient in to. An empty list
// falls back to the default recipient as a one-element list.
func (s *Session) BroadcastMessage(ctx context.Context, botID string, to []string, message string) (Result, error) {
	if len(to) == 0 && s.defaults.To != "" {
		to = []string{s.defaults.To}
	}
	botID, err := s.resolveBot(botID)
	if err != nil || len(to) == 0 {
		return Result{}, ErrMissingTarget
	}
	return s.client.BroadcastMessage(ctx, botID, to, message), nil
}

// FetchFriendsAndGroups returns the raw listing for the bot
func (s *Session) FetchFriendsAndGroups(ctx context.Context, botID string) (Result, error) {
	botID, err := s.resolveBot(botID)
	if err != nil {
		return Result{}, err
	}
	return s.client.FetchFriendsAndGroups(ctx, botID), nil
}

// ListAllFriends returns the bot's friends
func (s *Session) ListAllFriends(ctx context.Context, botID string) ([]Friend, error) {
	botID, err := s.resolveBot(botID)
	if err != nil {
		return []Friend{}, err
	}
	return s.client.ListAllFriends(ctx, botID)
}

// ListFriendIDs returns the one_id of each friend
func (s *Session) ListFriendIDs(ctx context.Context, botID string) ([]string, error) {
	botID, err := s.resolveBot(botID)
	if err != nil {
		return []string{}, err
	}
	return s.client.ListFriendIDs(ctx, botID)
}

// ListAllGroups returns the bot's groups
func (s *Session) ListAllGroups(ctx context.Context, botID string) ([]Group, error) {
	botID, err := s.resolveBot(botID)
	if err != nil {
		return []Group{}, err
	}
	return s.client.ListAllGroups(ctx, botID)
}

// ListGroupIDs returns the group_id of each group
func (s *Session) ListGroupIDs(ctx context.Context, botID string) ([]string, error) {
	botID, err := s.resolveBot(botID)
	if err != nil {
		return []string{}, err
	}
	return s.client.ListGroupIDs(ctx, botID)
}
