package client

import (
	"context"
	"fmt"
	"strconv"

	"github.com/DasULTRAS/splitwise-sdk/internal/http"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// userInvalidatePrefixes are the cached endpoints a user mutation touches.
var userInvalidatePrefixes = []string{"/get_current_user", "/get_user"}

// UsersClient implements splitwise.UsersClient.
type UsersClient struct {
	httpClient *http.Client
}

// NewUsersClient creates a new users client.
func NewUsersClient(httpClient *http.Client) *UsersClient {
	return &UsersClient{
		httpClient: httpClient,
	}
}

// GetCurrent implements splitwise.UsersClient.GetCurrent.
func (c *UsersClient) GetCurrent(ctx context.Context) (*splitwise.User, error) {
	resp, err := c.httpClient.Get(ctx, "/get_current_user", nil)
	if err != nil {
		return nil, fmt.Errorf("getting current user: %w", err)
	}

	var envelope struct {
		User splitwise.User `json:"user"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing current user: %w", err)
	}

	return &envelope.User, nil
}

// Get implements splitwise.UsersClient.Get.
func (c *UsersClient) Get(ctx context.Context, userID int64) (*splitwise.User, error) {
	path := "/get_user/" + strconv.FormatInt(userID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting user: %w", err)
	}

	var envelope struct {
		User splitwise.User `json:"user"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing user: %w", err)
	}

	return &envelope.User, nil
}

// Update implements splitwise.UsersClient.Update. The updated user comes back
// unwrapped, unlike the GET endpoints.
func (c *UsersClient) Update(ctx context.Context, userID int64, request *splitwise.UserUpdateRequest) (*splitwise.User, error) {
	path := "/update_user/" + strconv.FormatInt(userID, 10)

	resp, err := c.httpClient.Post(ctx, path, request, userInvalidatePrefixes...)
	if err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}

	var user splitwise.User

	err = resp.JSON(&user)
	if err != nil {
		return nil, fmt.Errorf("parsing updated user: %w", err)
	}

	return &user, nil
}
