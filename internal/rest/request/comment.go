package request

import "github.com/Guyuepp/go-clean-author-comment/domain"

type Comment struct {
	ID       int64  `json:"id"`                           // for PUT, overridden by the path
	Text     string `json:"text"`                         // for CREATE/PUT
	AuthorID int64  `json:"authorId" binding:"required"` // ignored when nested in an Author
}

// ToDomain: Request -> Domain
// The Author relation is left nil.
func (r *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:       r.ID,
		Text:     r.Text,
		AuthorID: r.AuthorID,
	}
}
