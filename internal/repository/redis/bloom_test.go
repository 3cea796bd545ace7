package redis

import (
	"context"
	"errors"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testBitSize = 1 << 20

func TestOffsets(t *testing.T) {
	client, _ := redismock.NewClientMock()
	r := NewAuthorBloomRepo(client, testBitSize)

	first := r.offsets(42)
	require.Len(t, first, bloomHashes)
	assert.Equal(t, first, r.offsets(42))
	assert.NotEqual(t, first, r.offsets(43))
	for _, o := range first {
		assert.Less(t, o, uint64(testBitSize))
	}
}

func TestAdd(t *testing.T) {
	client, mock := redismock.NewClientMock()
	r := NewAuthorBloomRepo(client, testBitSize)

	for _, o := range r.offsets(7) {
		mock.ExpectSetBit(KeyAuthorBloom, int64(o), 1).SetVal(0)
	}

	require.NoError(t, r.Add(context.TODO(), 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBulkAdd(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewAuthorBloomRepo(client, testBitSize)

		require.NoError(t, r.BulkAdd(context.TODO(), nil))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("many", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewAuthorBloomRepo(client, testBitSize)

		ids := []int64{1, 2, 3}
		for _, id := range ids {
			for _, o := range r.offsets(id) {
				mock.ExpectSetBit(KeyAuthorBloom, int64(o), 1).SetVal(0)
			}
		}

		require.NoError(t, r.BulkAdd(context.TODO(), ids))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

// readyRepo returns a repo that has completed a warmup.
func readyRepo(t *testing.T) (*authorBloom, redismock.ClientMock) {
	t.Helper()
	client, mock := redismock.NewClientMock()
	r := NewAuthorBloomRepo(client, testBitSize)

	mock.ExpectSet(KeyAuthorBloomReady, 1, 0).SetVal("OK")
	require.NoError(t, r.MarkReady(context.TODO(), r.Generation()))
	return r, mock
}

func TestExists(t *testing.T) {
	t.Run("all-bits-set", func(t *testing.T) {
		r, mock := readyRepo(t)

		mock.ExpectExists(KeyAuthorBloomReady).SetVal(1)
		for _, o := range r.offsets(7) {
			mock.ExpectGetBit(KeyAuthorBloom, int64(o)).SetVal(1)
		}

		ok, err := r.Exists(context.TODO(), 7)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("one-bit-missing", func(t *testing.T) {
		r, mock := readyRepo(t)

		mock.ExpectExists(KeyAuthorBloomReady).SetVal(1)
		offsets := r.offsets(7)
		mock.ExpectGetBit(KeyAuthorBloom, int64(offsets[0])).SetVal(1)
		mock.ExpectGetBit(KeyAuthorBloom, int64(offsets[1])).SetVal(0)
		mock.ExpectGetBit(KeyAuthorBloom, int64(offsets[2])).SetVal(1)

		ok, err := r.Exists(context.TODO(), 7)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("redis-error", func(t *testing.T) {
		r, mock := readyRepo(t)

		mock.ExpectExists(KeyAuthorBloomReady).SetErr(errors.New("connection refused"))

		_, err := r.Exists(context.TODO(), 7)
		assert.Error(t, err)
	})

	t.Run("before-warmup", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewAuthorBloomRepo(client, testBitSize)

		ok, err := r.Exists(context.TODO(), 7)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("marker-flushed", func(t *testing.T) {
		r, mock := readyRepo(t)

		mock.ExpectExists(KeyAuthorBloomReady).SetVal(0)
		for _, o := range r.offsets(7) {
			mock.ExpectGetBit(KeyAuthorBloom, int64(o)).SetVal(0)
		}

		ok, err := r.Exists(context.TODO(), 7)
		require.NoError(t, err)
		assert.True(t, ok)

		// no further lookups until the next warmup
		ok, err = r.Exists(context.TODO(), 8)
		require.NoError(t, err)
		assert.True(t, ok)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFailedAddDisablesNegatives(t *testing.T) {
	r, mock := readyRepo(t)

	offsets := r.offsets(7)
	mock.ExpectSetBit(KeyAuthorBloom, int64(offsets[0]), 1).SetErr(errors.New("i/o timeout"))

	gen := r.Generation()
	require.Error(t, r.Add(context.TODO(), 7))
	assert.Greater(t, r.Generation(), gen)

	ok, err := r.Exists(context.TODO(), 7)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkReady(t *testing.T) {
	t.Run("write-failed-during-warmup", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewAuthorBloomRepo(client, testBitSize)

		gen := r.Generation()
		offsets := r.offsets(1)
		mock.ExpectSetBit(KeyAuthorBloom, int64(offsets[0]), 1).SetErr(errors.New("i/o timeout"))
		require.Error(t, r.Add(context.TODO(), 1))

		require.NoError(t, r.MarkReady(context.TODO(), gen))
		assert.False(t, r.ready.Load())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("marker-write-error", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewAuthorBloomRepo(client, testBitSize)

		mock.ExpectSet(KeyAuthorBloomReady, 1, 0).SetErr(errors.New("connection refused"))

		assert.Error(t, r.MarkReady(context.TODO(), r.Generation()))
		assert.False(t, r.ready.Load())
	})

	t.Run("recovers-after-warmup", func(t *testing.T) {
		client, mock := redismock.NewClientMock()
		r := NewAuthorBloomRepo(client, testBitSize)

		offsets := r.offsets(1)
		mock.ExpectSetBit(KeyAuthorBloom, int64(offsets[0]), 1).SetErr(errors.New("i/o timeout"))
		require.Error(t, r.Add(context.TODO(), 1))

		mock.ExpectSet(KeyAuthorBloomReady, 1, 0).SetVal("OK")
		require.NoError(t, r.MarkReady(context.TODO(), r.Generation()))
		assert.True(t, r.ready.Load())
	})
}
