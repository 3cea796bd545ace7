package domain

import (
	"context"
	"time"
)

// Comment domain model
type Comment struct {
	ID           int64
	Text         string
	AuthorID     int64
	CreationTime time.Time // set once at insert time

	// Author is the resolved owner. Mapping never fills it; the comment usecase
	// attaches it after looking AuthorID up.
	Author *Author
}

// CommentUsecase 业务逻辑接口
type CommentUsecase interface {
	Fetch(ctx context.Context) ([]Comment, error)
	GetByID(ctx context.Context, id int64) (Comment, error)
	// Store returns ErrUnknownAuthor if c.AuthorID does not resolve.
	Store(ctx context.Context, c *Comment) error
	// Update returns ErrUnknownAuthor if c.AuthorID does not resolve.
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
}

// CommentRepository 数据存取接口
type CommentRepository interface {
	Fetch(ctx context.Context) ([]Comment, error)
	GetByID(ctx context.Context, id int64) (Comment, error)
	Store(ctx context.Context, c *Comment) error
	// Update overwrites text and author of the comment keyed by c.ID, inserting it if absent.
	// The creation time of an existing row is never rewritten.
	Update(ctx context.Context, c *Comment) error
	Delete(ctx context.Context, id int64) error
}
