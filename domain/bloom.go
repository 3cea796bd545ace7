package domain

import "context"

type BloomRepository interface {
	// Add 将 ID 加入过滤器
	Add(ctx context.Context, id int64) error

	// Exists 检查 ID 是否可能存在
	// 返回 true: 可能存在 (需要进一步查 DB)
	// 返回 false: 绝对不存在 (直接返回 ErrUnknownAuthor)
	// 过滤器未就绪时 (尚未预热、写入失败、数据丢失) 一律返回 true
	Exists(ctx context.Context, id int64) (bool, error)

	// BulkAdd 用于大量添加 ID
	BulkAdd(ctx context.Context, ids []int64) error

	// Generation 返回写入失败的累计次数，预热开始前读取
	Generation() uint64

	// MarkReady 在一次完整预热后调用；若预热期间 (gen 之后) 有写入失败则保持未就绪
	MarkReady(ctx context.Context, gen uint64) error
}
