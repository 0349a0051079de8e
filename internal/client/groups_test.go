package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DasULTRAS/splitwise-sdk/pkg/splitwise"
)

func TestGroupsClient_List(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_groups", r.URL.Path)
		_, _ = w.Write([]byte(`{"groups":[
			{"id":1,"name":"Flat","members":[{"id":10,"first_name":"Ada","balance":[{"currency_code":"EUR","amount":"12.50"}]}]},
			{"id":2,"name":"Trip"}
		]}`))
	}))

	groups, err := c.Groups().List(context.Background())
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Flat", groups[0].Name)
	require.Len(t, groups[0].Members, 1)
	assert.Equal(t, "Ada", groups[0].Members[0].FirstName)
	require.Len(t, groups[0].Members[0].Balance, 1)
	assert.Equal(t, "12.50", groups[0].Members[0].Balance[0].Amount)
}

func TestGroupsClient_Get(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/get_group/7", r.URL.Path)
		_, _ = w.Write([]byte(`{"group":{"id":7,"name":"Flat","simplify_by_default":true}}`))
	}))

	group, err := c.Groups().Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), group.ID)
	assert.True(t, group.SimplifyByDefault)
}

func TestGroupsClient_GetNotFound(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":{"base":["Invalid API request: record not found"]}}`))
	}))

	_, err := c.Groups().Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, splitwise.IsNotFound(err))

	var apiErr *splitwise.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "/get_group/999", apiErr.Endpoint)
}

func TestGroupsClient_Create(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/create_group", r.URL.Path)

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Ski trip", body["name"])

		_, _ = w.Write([]byte(`{"group":{"id":3,"name":"Ski trip"}}`))
	}))

	group, err := c.Groups().Create(context.Background(), &splitwise.GroupCreateRequest{Name: "Ski trip"})
	require.NoError(t, err)
	assert.Equal(t, int64(3), group.ID)
}

func TestGroupsClient_DeleteAndRestore(t *testing.T) {
	t.Parallel()

	var paths []string

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	ctx := context.Background()

	require.NoError(t, c.Groups().Delete(ctx, 3))
	require.NoError(t, c.Groups().Restore(ctx, 3))

	assert.Equal(t, []string{"/delete_group/3", "/undelete_group/3"}, paths)
}

func TestGroupsClient_AddAndRemoveUser(t *testing.T) {
	t.Parallel()

	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/add_user_to_group":
			var body map[string]interface{}
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, float64(7), body["group_id"])
			assert.Equal(t, "ada@example.com", body["email"])
		case "/remove_user_from_group":
			var body map[string]int64
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, int64(7), body["group_id"])
			assert.Equal(t, int64(10), body["user_id"])
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}

		_, _ = w.Write([]byte(`{"success":true}`))
	}))

	ctx := context.Background()

	err := c.Groups().AddUser(ctx, &splitwise.GroupAddUserRequest{
		GroupID:   7,
		FirstName: "Ada",
		Email:     "ada@example.com",
	})
	require.NoError(t, err)

	require.NoError(t, c.Groups().RemoveUser(ctx, 7, 10))
}
