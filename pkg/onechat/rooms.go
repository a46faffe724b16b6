package onechat

import (
	"context"
	"fmt"

	"github.com/keepmind9/onechat/pkg/constants"
)

// Friend is one entry of a bot's friend list. Fields other than one_id are vendor-defined.
type Friend map[string]any

// OneID returns the friend's user identifier
func (f Friend) OneID() string {
	return stringField(f, "one_id", "")
}

// Group is one entry of a bot's group list. Fields other than group_id are vendor-defined.
type Group map[string]any

// GroupID returns the group identifier
func (g Group) GroupID() string {
	return stringField(g, "group_id", "")
}

type roomListing struct {
	Status     string   `json:"status"`
	ListFriend []Friend `json:"list_friend"`
	ListGroup  []Group  `json:"list_group"`
}

// RoomReader lists the friends and groups a bot can message
type RoomReader struct {
	c *caller
}

// NewRoomReader creates a reader authorized with token
func NewRoomReader(token string, opts ...Option) *RoomReader {
	return &RoomReader{c: newCaller(token, opts...)}
}

// FetchFriendsAndGroups returns the combined listing as the server sent it
func (r *RoomReader) FetchFriendsAndGroups(ctx context.Context, botID string) Result {
	return r.c.postJSON(ctx, constants.GetListRoomPath, roomListPayload{BotID: botID})
}

// ListAllFriends returns the full friend entries. On a failed fetch or a
// non-success status it returns an empty slice and an *APIError, so an empty
// list and a failure can be told apart.
func (r *RoomReader) ListAllFriends(ctx context.Context, botID string) ([]Friend, error) {
	l, err := r.listing(ctx, botID)
	if err != nil {
		return []Friend{}, err
	}
	return l.ListFriend, nil
}

// ListFriendIDs returns the one_id of every friend. Entries without an ID are skipped.
func (r *RoomReader) ListFriendIDs(ctx context.Context, botID string) ([]string, error) {
	friends, err := r.ListAllFriends(ctx, botID)
	ids := make([]string, 0, len(friends))
	for _, f := range friends {
		if id := f.OneID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, err
}

// ListAllGroups returns the full group entries, with the same failure
// contract as ListAllFriends.
func (r *RoomReader) ListAllGroups(ctx context.Context, botID string) ([]Group, error) {
	l, err := r.listing(ctx, botID)
	if err != nil {
		return []Group{}, err
	}
	return l.ListGroup, nil
}

// ListGroupIDs returns the group_id of every group. Entries without an ID are skipped.
func (r *RoomReader) ListGroupIDs(ctx context.Context, botID string) ([]string, error) {
	groups, err := r.ListAllGroups(ctx, botID)
	ids := make([]string, 0, len(groups))
	for _, g := range groups {
		if id := g.GroupID(); id != "" {
			ids = append(ids, id)
		}
	}
	return ids, err
}

func (r *RoomReader) listing(ctx context.Context, botID string) (roomListing, error) {
	res := r.FetchFriendsAndGroups(ctx, botID)
	if err := res.Err(); err != nil {
		return roomListing{}, err
	}

	var l roomListing
	if err := res.Decode(&l); err != nil {
		return roomListing{}, fmt.Errorf("decode room listing: %w", err)
	}
	if l.ListFriend == nil {
		l.ListFriend = []Friend{}
	}
	if l.ListGroup == nil {
		l.ListGroup = []Group{}
	}
	return l, nil
}
