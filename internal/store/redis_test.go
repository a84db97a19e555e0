package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisStoreGetHit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	s := NewRedisWithClient(client)

	mock.ExpectGet(KeyAccounts).SetVal(`[]`)

	val, ok, err := s.Get(context.Background(), KeyAccounts)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte(`[]`), val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGetMissIsNotAnError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	s := NewRedisWithClient(client)

	mock.ExpectGet(KeyMessages).RedisNil()

	val, ok, err := s.Get(context.Background(), KeyMessages)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, val)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStoreGetError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	s := NewRedisWithClient(client)

	mock.ExpectGet(KeyMessages).SetErr(errors.New("connection refused"))

	_, ok, err := s.Get(context.Background(), KeyMessages)
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRedisStoreSetWithTTLAndDelete(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	s := NewRedisWithClient(client)
	key := SessionKey("abc")

	mock.ExpectSet(key, []byte(`{"id":"u1"}`), time.Hour).SetVal("OK")
	mock.ExpectDel(key).SetVal(1)

	ctx := context.Background()
	require.NoError(t, s.Set(ctx, key, []byte(`{"id":"u1"}`), time.Hour))
	require.NoError(t, s.Delete(ctx, key))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStorePing(t *testing.T) {
	client, mock := redismock.NewClientMock()
	defer client.Close()
	s := NewRedisWithClient(client)

	mock.ExpectPing().SetVal("PONG")
	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
