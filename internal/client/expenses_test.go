package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasULTRAS/splitwise-sdk/internal/client"
	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

func newTestClient(t *testing.T, handler http.Handler) splitwise.Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	c := client.New(&splitwise.Config{
		BaseURL:     server.URL,
		AccessToken: "test-key",
	})
	t.Cleanup(c.Close)

	return c
}

func TestExpensesClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_expenses", r.URL.Path)
		assert.Equal(t, "7", r.URL.Query().Get("group_id"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Empty(t, r.URL.Query().Get("friend_id"))

		_, _ = w.Write([]byte(`{"expenses":[
			{"id":1,"description":"Groceries","cost":"25.00","currency_code":"EUR","group_id":7},
			{"id":2,"description":"Taxi","cost":"12.50","currency_code":"EUR","group_id":7}
		]}`))
	}))

	expenses, err := c.Expenses().List(context.Background(), &splitwise.ExpenseListOptions{
		GroupID: 7,
		Limit:   20,
	})
	require.NoError(t, err)
	require.Len(t, expenses, 2)
	assert.Equal(t, "Groceries", expenses[0].Description)
	require.NotNil(t, expenses[1].GroupID)
	assert.Equal(t, int64(7), *expenses[1].GroupID)
}

func TestExpensesClient_ListTimeFilters(t *testing.T) {
	t.Parallel()

	after := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2026-08-01T00:00:00Z", r.URL.Query().Get("dated_after"))
		_, _ = w.Write([]byte(`{"expenses":[]}`))
	}))

	_, err := c.Expenses().List(context.Background(), &splitwise.ExpenseListOptions{
		DatedAfter: &after,
	})
	require.NoError(t, err)
}

func TestExpensesClient_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_expense/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"expense":{"id":42,"description":"Rent","cost":"900.00"}}`))
	}))

	expense, err := c.Expenses().Get(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), expense.ID)
	assert.Equal(t, "Rent", expense.Description)
}

func TestExpensesClient_Create(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/create_expense", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "30.00", body["cost"])
		assert.Equal(t, true, body["split_equally"])

		_, _ = w.Write([]byte(`{"expenses":[{"id":9,"description":"Dinner","cost":"30.00"}]}`))
	}))

	expenses, err := c.Expenses().Create(context.Background(), &splitwise.ExpenseCreateRequest{
		Cost:         "30.00",
		Description:  "Dinner",
		GroupID:      7,
		SplitEqually: true,
	})
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, int64(9), expenses[0].ID)
}

func TestExpensesClient_CreateValidationError(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":{"base":["Cost is required"]}}`))
	}))

	_, err := c.Expenses().Create(context.Background(), &splitwise.ExpenseCreateRequest{})
	require.Error(t, err)
	assert.True(t, splitwise.IsValidation(err))
}

func TestExpensesClient_Delete(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/delete_expense/42", r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	require.NoError(t, c.Expenses().Delete(context.Background(), 42))
}

func TestExpensesClient_DeleteReportedFailure(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// A failed operation hidden behind a 200.
		_, _ = w.Write([]byte(`{"success":false,"errors":{"base":["Expense not found"]}}`))
	}))

	err := c.Expenses().Delete(context.Background(), 42)
	require.ErrorIs(t, err, client.ErrOperationFailed)
	assert.Contains(t, err.Error(), "Expense not found")
}

func TestExpensesClient_MutationInvalidatesListings(t *testing.T) {
	t.Parallel()

	listCalls := 0

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/get_expenses":
			listCalls++
			_, _ = w.Write([]byte(`{"expenses":[]}`))
		case "/create_expense":
			_, _ = w.Write([]byte(`{"expenses":[{"id":1}]}`))
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	ctx := context.Background()

	_, err := c.Expenses().List(ctx, nil)
	require.NoError(t, err)

	_, err = c.Expenses().List(ctx, nil)
	require.NoError(t, err)
	require.Equal(t, 1, listCalls, "second listing cached")

	_, err = c.Expenses().Create(ctx, &splitwise.ExpenseCreateRequest{Cost: "1.00", Description: "x", GroupID: 1})
	require.NoError(t, err)

	_, err = c.Expenses().List(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, listCalls, "mutation invalidated the listing")
}
