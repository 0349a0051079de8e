package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/DasULTRAS/splitwise-sdk/internal/http"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// friendInvalidatePrefixes are the cached endpoints a friend mutation touches.
var friendInvalidatePrefixes = []string{"/get_friends", "/get_friend"}

// FriendsClient implements splitwise.FriendsClient.
type FriendsClient struct {
	httpClient *http.Client
}

// NewFriendsClient creates a new friends client.
func NewFriendsClient(httpClient *http.Client) *FriendsClient {
	return &FriendsClient{
		httpClient: httpClient,
	}
}

// List implements splitwise.FriendsClient.List.
func (c *FriendsClient) List(ctx context.Context) ([]splitwise.Friend, error) {
	resp, err := c.httpClient.Get(ctx, "/get_friends", nil)
	if err != nil {
		return nil, fmt.Errorf("listing friends: %w", err)
	}

	var envelope struct {
		Friends []splitwise.Friend `json:"friends"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing friends list: %w", err)
	}

	return envelope.Friends, nil
}

// Get implements splitwise.FriendsClient.Get.
func (c *FriendsClient) Get(ctx context.Context, friendID int64) (*splitwise.Friend, error) {
	path := "/get_friend/" + strconv.FormatInt(friendID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting friend: %w", err)
	}

	var envelope struct {
		Friend splitwise.Friend `json:"friend"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing friend: %w", err)
	}

	return &envelope.Friend, nil
}

// Add implements splitwise.FriendsClient.Add. The created friend comes back
// unwrapped, unlike the GET endpoints.
func (c *FriendsClient) Add(ctx context.Context, request *splitwise.FriendCreateRequest) (*splitwise.Friend, error) {
	resp, err := c.httpClient.Post(ctx, "/create_friend", request, friendInvalidatePrefixes...)
	if err != nil {
		return nil, fmt.Errorf("adding friend: %w", err)
	}

	var friend splitwise.Friend

	err = resp.JSON(&friend)
	if err != nil {
		return nil, fmt.Errorf("parsing added friend: %w", err)
	}

	return &friend, nil
}

// Delete implements splitwise.FriendsClient.Delete.
func (c *FriendsClient) Delete(ctx context.Context, friendID int64) error {
	path := "/delete_friend/" + strconv.FormatInt(friendID, 10)

	resp, err := c.httpClient.Post(ctx, path, nil, friendInvalidatePrefixes...)
	if err != nil {
		return fmt.Errorf("deleting friend: %w", err)
	}

	return checkSuccess(resp, "deleting friend")
}
