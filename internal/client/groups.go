package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/DasULTRAS/splitwise-sdk/internal/http"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// groupInvalidatePrefixes are the cached endpoints a group mutation touches.
var groupInvalidatePrefixes = []string{"/get_groups", "/get_group"}

// GroupsClient implements splitwise.GroupsClient.
type GroupsClient struct {
	httpClient *http.Client
}

// NewGroupsClient creates a new groups client.
func NewGroupsClient(httpClient *http.Client) *GroupsClient {
	return &GroupsClient{
		httpClient: httpClient,
	}
}

// List implements splitwise.GroupsClient.List.
func (c *GroupsClient) List(ctx context.Context) ([]splitwise.Group, error) {
	resp, err := c.httpClient.Get(ctx, "/get_groups", nil)
	if err != nil {
		return nil, fmt.Errorf("listing groups: %w", err)
	}

	var envelope struct {
		Groups []splitwise.Group `json:"groups"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing groups list: %w", err)
	}

	return envelope.Groups, nil
}

// Get implements splitwise.GroupsClient.Get.
func (c *GroupsClient) Get(ctx context.Context, groupID int64) (*splitwise.Group, error) {
	path := "/get_group/" + strconv.FormatInt(groupID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting group: %w", err)
	}

	var envelope struct {
		Group splitwise.Group `json:"group"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing group: %w", err)
	}

	return &envelope.Group, nil
}

// Create implements splitwise.GroupsClient.Create.
func (c *GroupsClient) Create(ctx context.Context, request *splitwise.GroupCreateRequest) (*splitwise.Group, error) {
	resp, err := c.httpClient.Post(ctx, "/create_group", request, groupInvalidatePrefixes...)
	if err != nil {
		return nil, fmt.Errorf("creating group: %w", err)
	}

	var envelope struct {
		Group splitwise.Group `json:"group"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing created group: %w", err)
	}

	return &envelope.Group, nil
}

// Delete implements splitwise.GroupsClient.Delete.
func (c *GroupsClient) Delete(ctx context.Context, groupID int64) error {
	path := "/delete_group/" + strconv.FormatInt(groupID, 10)

	resp, err := c.httpClient.Post(ctx, path, nil, groupInvalidatePrefixes...)
	if err != nil {
		return fmt.Errorf("deleting group: %w", err)
	}

	return checkSuccess(resp, "deleting group")
}

// Restore implements splitwise.GroupsClient.Restore.
func (c *GroupsClient) Restore(ctx context.Context, groupID int64) error {
	path := "/undelete_group/" + strconv.FormatInt(groupID, 10)

	resp, err := c.httpClient.Post(ctx, path, nil, groupInvalidatePrefixes...)
	if err != nil {
		return fmt.Errorf("restoring group: %w", err)
	}

	return checkSuccess(resp, "restoring group")
}

// AddUser implements splitwise.GroupsClient.AddUser.
func (c *GroupsClient) AddUser(ctx context.Context, request *splitwise.GroupAddUserRequest) error {
	resp, err := c.httpClient.Post(ctx, "/add_user_to_group", request, groupInvalidatePrefixes...)
	if err != nil {
		return fmt.Errorf("adding user to group: %w", err)
	}

	return checkSuccess(resp, "adding user to group")
}

// RemoveUser implements splitwise.GroupsClient.RemoveUser.
func (c *GroupsClient) RemoveUser(ctx context.Context, groupID, userID int64) error {
	body := map[string]int64{
		"group_id": groupID,
		"user_id":  userID,
	}

	resp, err := c.httpClient.Post(ctx, "/remove_user_from_group", body, groupInvalidatePrefixes...)
	if err != nil {
		return fmt.Errorf("removing user from group: %w", err)
	}

	return checkSuccess(resp, "removing user from group")
}
