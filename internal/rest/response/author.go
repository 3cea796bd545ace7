package response

import "github.com/Guyuepp/go-clean-author-comment/domain"

type Author struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Rating    int64     `json:"rating"`
	Comments  []Comment `json:"comments"`
}

// NewAuthorFromDomain: Domain -> Response, comments included.
func NewAuthorFromDomain(a *domain.Author) Author {
	comments := make([]Comment, len(a.Comments))
	for i := range a.Comments {
		comments[i] = NewCommentFromDomain(&a.Comments[i])
	}
	return Author{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Rating:    a.Rating,
		Comments:  comments,
	}
}
