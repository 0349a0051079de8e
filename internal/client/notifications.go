package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/DasULTRAS/splitwise-sdk/internal/http"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// NotificationsClient implements splitwise.NotificationsClient.
type NotificationsClient struct {
	httpClient *http.Client
}

// NewNotificationsClient creates a new notifications client.
func NewNotificationsClient(httpClient *http.Client) *NotificationsClient {
	return &NotificationsClient{
		httpClient: httpClient,
	}
}

// List implements splitwise.NotificationsClient.List.
func (c *NotificationsClient) List(ctx context.Context, opts *splitwise.NotificationListOptions) ([]splitwise.Notification, error) {
	var query url.Values

	if opts != nil {
		query = url.Values{}

		if opts.UpdatedAfter != nil {
			query.Set("updated_after", opts.UpdatedAfter.UTC().Format(time.RFC3339))
		}

		if opts.Limit > 0 {
			query.Set("limit", strconv.Itoa(opts.Limit))
		}
	}

	resp, err := c.httpClient.Get(ctx, "/get_notifications", query)
	if err != nil {
		return nil, fmt.Errorf("listing notifications: %w", err)
	}

	var envelope struct {
		Notifications []splitwise.Notification `json:"notifications"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing notifications list: %w", err)
	}

	return envelope.Notifications, nil
}
