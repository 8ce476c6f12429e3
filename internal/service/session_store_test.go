package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisSessionStore_SaveExistsRevoke(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisSessionStore(client)
	ctx := context.Background()

	mock.ExpectSet("session_token:42:tok-1", "1", 12*time.Hour).SetVal("OK")
	mock.ExpectExists("session_token:42:tok-1").SetVal(1)
	mock.ExpectDel("session_token:42:tok-1").SetVal(1)
	mock.ExpectExists("session_token:42:tok-1").SetVal(0)

	require.NoError(t, store.Save(ctx, "42", "tok-1", 12*time.Hour))

	exists, err := store.Exists(ctx, "42", "tok-1")
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, store.Revoke(ctx, "42", "tok-1"))

	exists, err = store.Exists(ctx, "42", "tok-1")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisSessionStore_Errors(t *testing.T) {
	client, mock := redismock.NewClientMock()
	store := NewRedisSessionStore(client)
	ctx := context.Background()

	mock.ExpectSet("session_token:42:tok-1", "1", time.Hour).SetErr(errors.New("redis down"))
	mock.ExpectExists("session_token:42:tok-1").SetErr(errors.New("redis down"))

	assert.EqualError(t, store.Save(ctx, "42", "tok-1", time.Hour), "redis down")

	exists, err := store.Exists(ctx, "42", "tok-1")
	assert.EqualError(t, err, "redis down")
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}
