package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/DasULTRAS/splitwise-sdk/internal/http"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// CommentsClient implements splitwise.CommentsClient.
type CommentsClient struct {
	httpClient *http.Client
}

// NewCommentsClient creates a new comments client.
func NewCommentsClient(httpClient *http.Client) *CommentsClient {
	return &CommentsClient{
		httpClient: httpClient,
	}
}

// List implements splitwise.CommentsClient.List.
func (c *CommentsClient) List(ctx context.Context, expenseID int64) ([]splitwise.Comment, error) {
	query := url.Values{}
	query.Set("expense_id", strconv.FormatInt(expenseID, 10))

	resp, err := c.httpClient.Get(ctx, "/get_comments", query)
	if err != nil {
		return nil, fmt.Errorf("listing comments: %w", err)
	}

	var envelope struct {
		Comments []splitwise.Comment `json:"comments"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing comments list: %w", err)
	}

	return envelope.Comments, nil
}

// Create implements splitwise.CommentsClient.Create.
func (c *CommentsClient) Create(ctx context.Context, request *splitwise.CommentCreateRequest) (*splitwise.Comment, error) {
	resp, err := c.httpClient.Post(ctx, "/create_comment", request, "/get_comments")
	if err != nil {
		return nil, fmt.Errorf("creating comment: %w", err)
	}

	var envelope struct {
		Comment splitwise.Comment `json:"comment"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing created comment: %w", err)
	}

	return &envelope.Comment, nil
}
