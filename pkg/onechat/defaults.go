package onechat

import (
	"context"
	"sync"
)

var (
	defaultMu      sync.RWMutex
	defaultSession *Session
)

// Init builds a Client from token and installs it, with defaults, as the
// session behind the package-level functions. Calling Init again replaces it.
func Init(token string, defaults Defaults, opts ...Option) *Session {
	s := NewSession(New(token, opts...), defaults)
	SetDefault(s)
	return s
}

// SetDefault installs s as the package-level session. Passing nil uninstalls it.
func SetDefault(s *Session) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultSession = s
}

// Default returns the package-level session or ErrNotInitialized
func Default() (*Session, error) {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	if defaultSession == nil {
		return nil, ErrNotInitialized
	}
	return defaultSession, nil
}

// Send delivers msg using the package-level session
func Send(ctx context.Context, t Target, msg Message) (Result, error) {
	s, err := Default()
	if err != nil {
		return Result{}, err
	}
	return s.Send(ctx, t, msg)
}

// SendMessage sends a text message using the package-level session
func SendMessage(ctx context.Context, t Target, message string) (Result, error) {
	return Send(ctx, t, Text{Message: message})
}

// SendTemplate sends a template message using the package-level session
func SendTemplate(ctx context.Context, t Target, elements []Element) (Result, error) {
	return Send(ctx, t, Template{Elements: elements})
}

// SendFile uploads a file using the package-level session
func SendFile(ctx context.Context, t Target, path string) (Result, error) {
	return Send(ctx, t, File{Path: path})
}

// SendWebview sends an in-app link using the package-level session
func SendWebview(ctx context.Context, t Target, url string) (Result, error) {
	return Send(ctx, t, WebView{URL: url})
}

// SendLocation sends a location pin using the package-level session
func SendLocation(ctx context.Context, t Target, latitude, longitude, address string) (Result, error) {
	return Send(ctx, t, Location{Latitude: latitude, Longitude: longitude, Address: address})
}

// SendSticker sends a sticker using the package-level session
func SendSticker(ctx context.Context, t Target, stickerID string) (Result, error) {
	return Send(ctx, t, Sticker{StickerID: stickerID})
}

// SendQuickReply sends text with reply options using the package-level session
func SendQuickReply(ctx context.Context, t Target, message string, options []Element) (Result, error) {
	return Send(ctx, t, QuickReply{Message: message, Options: options})
}

// SendImageCarousel sends an image carousel using the package-level session
func SendImageCarousel(ctx context.Context, t Target, elements []Element) (Result, error) {
	return Send(ctx, t, ImageCarousel{Elements: elements})
}

// BroadcastMessage broadcasts using the package-level session
func BroadcastMessage(ctx context.Context, botID string, to []string, message string) (Result, error) {
	s, err := Default()
	if err != nil {
		return Result{}, err
	}
	return s.BroadcastMessage(ctx, botID, to, message)
}

// FetchFriendsAndGroups returns the raw listing using the package-level session
func FetchFriendsAndGroups(ctx context.Context, botID string) (Result, error) {
	s, err := Default()
	if err != nil {
		return Result{}, err
	}
	return s.FetchFriendsAndGroups(ctx, botID)
}

// ListAllFriends lists friends using the package-level session
func ListAllFriends(ctx context.Context, botID string) ([]Friend, error) {
	s, err := Default()
	if err != nil {
		return []Friend{}, err
	}
	return s.ListAllFriends(ctx, botID)
}

// ListFriendIDs lists friend IDs using the package-level session
func ListFriendIDs(ctx context.Context, botID string) ([]string, error) {
	s, err := Default()
	if err != nil {
		return []string{}, err
	}
	return s.ListFriendIDs(ctx, botID)
}

// ListAllGroups lists groups using the package-level session
func ListAllGroups(ctx context.Context, botID string) ([]Group, error) {
	s, err := Default()
	if err != nil {
		return []Group{}, err
	}
	return s.ListAllGroups(ctx, botID)
}

// ListGroupIDs lists group IDs using the package-level session
func ListGroupIDs(ctx context.Context, botID string) ([]string, error) {
	s, err := Default()
	if err != nil {
		return []string{}, err
	}
	return s.ListGroupIDs(ctx, botID)
}
