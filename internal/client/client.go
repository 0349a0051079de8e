// Package client implements the splitwise.Client interface on top of the
// request pipeline, one façade per API resource.
package client

import (
	"errors"

	"github.com/DasULTRAS/splitwise-sdk/internal/auth"
	"github.com/DasULTRAS/splitwise-sdk/internal/http"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

// Static errors for err113 compliance.
var (
	ErrOperationFailed = errors.New("operation reported failure")
)

// Client implements the splitwise.Client interface.
type Client struct {
	httpClient *http.Client

	users         splitwise.UsersClient
	groups        splitwise.GroupsClient
	expenses      splitwise.ExpensesClient
	friends       splitwise.FriendsClient
	comments      splitwise.CommentsClient
	notifications splitwise.NotificationsClient
	currencies    splitwise.CurrenciesClient
	categories    splitwise.CategoriesClient
}

// New creates a client from an already-normalized configuration. The base URL
// must carry a scheme and no trailing slash; swclient.New takes care of that.
func New(config *splitwise.Config) *Client {
	httpClient := http.NewClient(config.BaseURL, createTokenManager(config), createOptions(config)...)

	client := &Client{httpClient: httpClient}

	client.users = NewUsersClient(httpClient)
	client.groups = NewGroupsClient(httpClient)
	client.expenses = NewExpensesClient(httpClient)
	client.friends = NewFriendsClient(httpClient)
	client.comments = NewCommentsClient(httpClient)
	client.notifications = NewNotificationsClient(httpClient)
	client.currencies = NewCurrenciesClient(httpClient)
	client.categories = NewCategoriesClient(httpClient)

	return client
}

// createTokenManager creates the appropriate token manager based on config. A
// provider takes precedence over a static token; with neither, the pipeline
// fails every call with an authentication-kind error.
func createTokenManager(config *splitwise.Config) auth.TokenManager {
	if config.TokenProvider != nil {
		return auth.NewProviderTokenManager(config.TokenProvider)
	}

	if config.AccessToken != "" {
		return auth.NewStaticTokenManager(config.AccessToken)
	}

	return nil
}

// createOptions translates the public configuration into pipeline options.
func createOptions(config *splitwise.Config) []http.Option {
	var opts []http.Option

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.UserAgent != "" {
		opts = append(opts, http.WithUserAgent(config.UserAgent))
	}

	if config.HTTPClient != nil {
		opts = append(opts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.Retry != nil {
		opts = append(opts, http.WithRetryConfig(config.Retry.MaxRetries, config.Retry.BaseDelay, config.Retry.MaxDelay))
	}

	if config.Cache != nil {
		opts = append(opts, http.WithCacheConfig(config.Cache))
	}

	if config.Metrics != nil {
		opts = append(opts, http.WithMetrics(config.Metrics))
	}

	return opts
}

// Users implements splitwise.Client.Users.
func (c *Client) Users() splitwise.UsersClient {
	return c.users
}

// Groups implements splitwise.Client.Groups.
func (c *Client) Groups() splitwise.GroupsClient {
	return c.groups
}

// Expenses implements splitwise.Client.Expenses.
func (c *Client) Expenses() splitwise.ExpensesClient {
	return c.expenses
}

// Friends implements splitwise.Client.Friends.
func (c *Client) Friends() splitwise.FriendsClient {
	return c.friends
}

// Comments implements splitwise.Client.Comments.
func (c *Client) Comments() splitwise.CommentsClient {
	return c.comments
}

// Notifications implements splitwise.Client.Notifications.
func (c *Client) Notifications() splitwise.NotificationsClient {
	return c.notifications
}

// Currencies implements splitwise.Client.Currencies.
func (c *Client) Currencies() splitwise.CurrenciesClient {
	return c.currencies
}

// Categories implements splitwise.Client.Categories.
func (c *Client) Categories() splitwise.CategoriesClient {
	return c.categories
}

// ClearCache implements splitwise.Client.ClearCache.
func (c *Client) ClearCache() {
	c.httpClient.ClearCache()
}

// Close implements splitwise.Client.Close.
func (c *Client) Close() {
	c.httpClient.Close()
}
