package domain

import (
	"context"
)

// Author represents the owner of comments.
// Comments is a queried view of every comment whose AuthorID equals ID.
type Author struct {
	ID        int64     // Store generated identifier
	FirstName string    // Given name
	LastName  string    // Family name
	Rating    int64     // Score of the author
	Comments  []Comment // Owned comments, order is irrelevant
}

// AuthorRepository defines the contract for author data persistence.
type AuthorRepository interface {
	// Fetch retrieves every author with its comments.
	Fetch(ctx context.Context) ([]Author, error)

	// GetByID retrieves a single author with its comments.
	// Returns ErrNotFound if the author doesn't exist.
	GetByID(ctx context.Context, id int64) (Author, error)

	// Store inserts the author and its comments in one transaction.
	// Backfills the IDs and creation times in the provided Author.
	Store(ctx context.Context, a *Author) error

	// Update overwrites the author row keyed by a.ID, inserting it if absent,
	// and upserts every listed comment under that author.
	// Returns ErrConflict if a listed comment belongs to another author.
	Update(ctx context.Context, a *Author) error

	// Exists reports whether the author row exists, without loading comments.
	Exists(ctx context.Context, id int64) (bool, error)

	// Delete removes the author and all of its comments in one transaction.
	// Returns ErrNotFound if the author doesn't exist.
	Delete(ctx context.Context, id int64) error

	// FetchIDs returns up to limit author IDs greater than cursor, ascending.
	FetchIDs(ctx context.Context, cursor, limit int64) ([]int64, error)
}

// AuthorUsecase defines the business logic contract for author operations.
type AuthorUsecase interface {
	Fetch(ctx context.Context) ([]Author, error)
	GetByID(ctx context.Context, id int64) (Author, error)
	// Store returns ErrBadParamInput if a.Comments is nil.
	Store(ctx context.Context, a *Author) error
	// Update returns ErrBadParamInput if a.Comments is nil.
	Update(ctx context.Context, a *Author) error
	Delete(ctx context.Context, id int64) error
}
