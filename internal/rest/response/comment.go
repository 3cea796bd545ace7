package response

import "github.com/Guyuepp/go-clean-author-comment/domain"

const DateTimeFormat = "2006-01-02 15:04:05"

type Comment struct {
	ID           int64  `json:"id"`
	Text         string `json:"text"`
	AuthorID     int64  `json:"authorId"`
	CreationTime string `json:"creationTime,omitempty"`
}

// NewCommentFromDomain flattens the author to its id.
func NewCommentFromDomain(c *domain.Comment) Comment {
	res := Comment{
		ID:       c.ID,
		Text:     c.Text,
		AuthorID: c.AuthorID,
	}
	if !c.CreationTime.IsZero() {
		res.CreationTime = c.CreationTime.Format(DateTimeFormat)
	}
	return res
}
