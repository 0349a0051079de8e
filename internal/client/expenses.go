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

// expenseInvalidatePrefixes are the cached endpoints an expense mutation
// touches. Expense changes shift balances, so group views are dropped too.
var expenseInvalidatePrefixes = []string{"/get_expenses", "/get_expense", "/get_groups", "/get_group"}

// ExpensesClient implements splitwise.ExpensesClient.
type ExpensesClient struct {
	httpClient *http.Client
}

// NewExpensesClient creates a new expenses client.
func NewExpensesClient(httpClient *http.Client) *ExpensesClient {
	return &ExpensesClient{
		httpClient: httpClient,
	}
}

// List implements splitwise.ExpensesClient.List.
func (c *ExpensesClient) List(ctx context.Context, opts *splitwise.ExpenseListOptions) ([]splitwise.Expense, error) {
	resp, err := c.httpClient.Get(ctx, "/get_expenses", expenseListQuery(opts))
	if err != nil {
		return nil, fmt.Errorf("listing expenses: %w", err)
	}

	var envelope struct {
		Expenses []splitwise.Expense `json:"expenses"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing expenses list: %w", err)
	}

	return envelope.Expenses, nil
}

// Get implements splitwise.ExpensesClient.Get.
func (c *ExpensesClient) Get(ctx context.Context, expenseID int64) (*splitwise.Expense, error) {
	path := "/get_expense/" + strconv.FormatInt(expenseID, 10)

	resp, err := c.httpClient.Get(ctx, path, nil)
	if err != nil {
		return nil, fmt.Errorf("getting expense: %w", err)
	}

	var envelope struct {
		Expense splitwise.Expense `json:"expense"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing expense: %w", err)
	}

	return &envelope.Expense, nil
}

// Create implements splitwise.ExpensesClient.Create. The API returns the
// created expenses as a list; recurring expenses can produce more than one.
func (c *ExpensesClient) Create(ctx context.Context, request *splitwise.ExpenseCreateRequest) ([]splitwise.Expense, error) {
	resp, err := c.httpClient.Post(ctx, "/create_expense", request, expenseInvalidatePrefixes...)
	if err != nil {
		return nil, fmt.Errorf("creating expense: %w", err)
	}

	var envelope struct {
		Expenses []splitwise.Expense `json:"expenses"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing created expenses: %w", err)
	}

	return envelope.Expenses, nil
}

// Update implements splitwise.ExpensesClient.Update.
func (c *ExpensesClient) Update(ctx context.Context, expenseID int64, request *splitwise.ExpenseUpdateRequest) ([]splitwise.Expense, error) {
	path := "/update_expense/" + strconv.FormatInt(expenseID, 10)

	resp, err := c.httpClient.Post(ctx, path, request, expenseInvalidatePrefixes...)
	if err != nil {
		return nil, fmt.Errorf("updating expense: %w", err)
	}

	var envelope struct {
		Expenses []splitwise.Expense `json:"expenses"`
	}

	err = resp.JSON(&envelope)
	if err != nil {
		return nil, fmt.Errorf("parsing updated expenses: %w", err)
	}

	return envelope.Expenses, nil
}

// Delete implements splitwise.ExpensesClient.Delete.
func (c *ExpensesClient) Delete(ctx context.Context, expenseID int64) error {
	path := "/delete_expense/" + strconv.FormatInt(expenseID, 10)

	resp, err := c.httpClient.Post(ctx, path, nil, expenseInvalidatePrefixes...)
	if err != nil {
		return fmt.Errorf("deleting expense: %w", err)
	}

	return checkSuccess(resp, "deleting expense")
}

// Restore implements splitwise.ExpensesClient.Restore.
func (c *ExpensesClient) Restore(ctx context.Context, expenseID int64) error {
	path := "/undelete_expense/" + strconv.FormatInt(expenseID, 10)

	resp, err := c.httpClient.Post(ctx, path, nil, expenseInvalidatePrefixes...)
	if err != nil {
		return fmt.Errorf("restoring expense: %w", err)
	}

	return checkSuccess(resp, "restoring expense")
}

// expenseListQuery converts list options into query parameters.
func expenseListQuery(opts *splitwise.ExpenseListOptions) url.Values {
	if opts == nil {
		return nil
	}

	query := url.Values{}

	if opts.GroupID > 0 {
		query.Set("group_id", strconv.FormatInt(opts.GroupID, 10))
	}

	if opts.FriendID > 0 {
		query.Set("friend_id", strconv.FormatInt(opts.FriendID, 10))
	}

	setTimeParam(query, "dated_after", opts.DatedAfter)
	setTimeParam(query, "dated_before", opts.DatedBefore)
	setTimeParam(query, "updated_after", opts.UpdatedAfter)
	setTimeParam(query, "updated_before", opts.UpdatedBefore)

	if opts.Limit > 0 {
		query.Set("limit", strconv.Itoa(opts.Limit))
	}

	if opts.Offset > 0 {
		query.Set("offset", strconv.Itoa(opts.Offset))
	}

	return query
}

func setTimeParam(query url.Values, key string, value *time.Time) {
	if value != nil {
		query.Set(key, value.UTC().Format(time.RFC3339))
	}
}
