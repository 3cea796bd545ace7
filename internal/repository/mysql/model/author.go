package model

import (
	"github.com/Guyuepp/go-clean-author-comment/domain"
)

type Author struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	FirstName string    `gorm:"column:first_name;type:varchar(255)"`
	LastName  string    `gorm:"column:last_name;type:varchar(255)"`
	Rating    int64     `gorm:"column:rating;default:0"`
	Comments  []Comment `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (Author) TableName() string {
	return "author"
}

func (m *Author) ToDomain() domain.Author {
	comments := make([]domain.Comment, len(m.Comments))
	for i := range m.Comments {
		comments[i] = m.Comments[i].ToDomain()
	}
	return domain.Author{
		ID:        m.ID,
		FirstName: m.FirstName,
		LastName:  m.LastName,
		Rating:    m.Rating,
		Comments:  comments,
	}
}

// NewAuthorFromDomain maps the author and, recursively, its comments.
// Every comment is bound to a.ID regardless of its own AuthorID.
func NewAuthorFromDomain(a *domain.Author) *Author {
	comments := make([]Comment, len(a.Comments))
	for i := range a.Comments {
		comments[i] = *NewCommentFromDomain(&a.Comments[i])
		comments[i].AuthorID = a.ID
	}
	return &Author{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Rating:    a.Rating,
		Comments:  comments,
	}
}
