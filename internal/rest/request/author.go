package request

import "github.com/Guyuepp/go-clean-author-comment/domain"

type Author struct {
	ID        int64     `json:"id"` // overridden by the path on PUT
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Rating    int64     `json:"rating"`
	Comments  []Comment `json:"comments" binding:"required"` // may be empty, never null
}

// ToDomain: Request -> Domain
func (r *Author) ToDomain() domain.Author {
	a := domain.Author{
		ID:        r.ID,
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Rating:    r.Rating,
	}
	if r.Comments != nil {
		a.Comments = make([]domain.Comment, len(r.Comments))
		for i := range r.Comments {
			a.Comments[i] = r.Comments[i].ToDomain()
		}
	}
	return a
}
