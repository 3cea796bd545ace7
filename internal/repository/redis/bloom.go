package redis

import (
	"context"
	"hash/crc32"
	"hash/fnv"
	"strconv"
	"sync/atomic"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-author-comment/domain"
)

const (
	KeyAuthorBloom = "bloom:author:ids"
	// KeyAuthorBloomReady 预热完成标记；redis 重启或被清空后随位图一起消失
	KeyAuthorBloomReady = "bloom:author:ready"

	// bloomHashes is the number of bits set per id.
	bloomHashes = 3
)

type authorBloom struct {
	client   *redis.Client
	key      string
	readyKey string
	bitSize  uint64

	// failures counts failed writes; ready is cleared by any of them.
	failures atomic.Uint64
	ready    atomic.Bool
}

var _ domain.BloomRepository = (*authorBloom)(nil)

// NewAuthorBloomRepo returns a bloom filter over author ids stored as a redis bitmap.
func NewAuthorBloomRepo(client *redis.Client, bitSize uint64) *authorBloom {
	return &authorBloom{
		client:   client,
		key:      KeyAuthorBloom,
		readyKey: KeyAuthorBloomReady,
		bitSize:  bitSize,
	}
}

func (r *authorBloom) Generation() uint64 {
	return r.failures.Load()
}

func (r *authorBloom) MarkReady(ctx context.Context, gen uint64) error {
	if r.failures.Load() != gen {
		logrus.Warn("bloom filter missed writes during warmup, staying in fallback mode")
		return nil
	}
	if err := r.client.Set(ctx, r.readyKey, 1, 0).Err(); err != nil {
		r.markStale()
		return err
	}
	r.ready.Store(true)
	if r.failures.Load() != gen {
		r.ready.Store(false)
	}
	return nil
}

func (r *authorBloom) markStale() {
	r.failures.Add(1)
	r.ready.Store(false)
}

func (r *authorBloom) Add(ctx context.Context, id int64) error {
	return r.BulkAdd(ctx, []int64{id})
}

func (r *authorBloom) BulkAdd(ctx context.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	pipe := r.client.Pipeline()
	for _, id := range ids {
		for _, offset := range r.offsets(id) {
			pipe.SetBit(ctx, r.key, int64(offset), 1)
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		r.markStale()
		return err
	}
	return nil
}

// Exists answers true without a lookup until the filter is known to hold
// every author id.
func (r *authorBloom) Exists(ctx context.Context, id int64) (bool, error) {
	if !r.ready.Load() {
		return true, nil
	}

	pipe := r.client.Pipeline()
	marker := pipe.Exists(ctx, r.readyKey)
	cmds := make([]*redis.IntCmd, 0, bloomHashes)
	for _, offset := range r.offsets(id) {
		cmds = append(cmds, pipe.GetBit(ctx, r.key, int64(offset)))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return false, err
	}

	if marker.Val() == 0 {
		logrus.Warn("bloom filter ready marker is gone, waiting for the next warmup")
		r.markStale()
		return true, nil
	}

	for _, cmd := range cmds {
		if cmd.Val() == 0 {
			return false, nil
		}
	}
	return true, nil
}

// offsets derives bloomHashes bit positions from two independent hashes
// (g_i = h1 + i*h2).
func (r *authorBloom) offsets(id int64) []uint64 {
	data := strconv.AppendInt(nil, id, 10)

	h1 := uint64(crc32.ChecksumIEEE(data))
	f := fnv.New64a()
	_, _ = f.Write(data)
	h2 := f.Sum64() | 1

	res := make([]uint64, bloomHashes)
	for i := range res {
		res[i] = (h1 + uint64(i)*h2) % r.bitSize
	}
	return res
}
