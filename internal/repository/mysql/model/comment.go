package model

import (
	"time"

	"github.com/Guyuepp/go-clean-author-comment/domain"
)

type Comment struct {
	ID           int64     `gorm:"primaryKey;autoIncrement"`
	Text         string    `gorm:"type:text"`
	AuthorID     int64     `gorm:"column:author_id;not null;index"`
	CreationTime time.Time `gorm:"column:creation_time;type:datetime;autoCreateTime"`
}

func (Comment) TableName() string {
	return "comment"
}

// NewCommentFromDomain never carries c.Author, only the AuthorID column.
func NewCommentFromDomain(c *domain.Comment) *Comment {
	return &Comment{
		ID:           c.ID,
		Text:         c.Text,
		AuthorID:     c.AuthorID,
		CreationTime: c.CreationTime,
	}
}

func (m *Comment) ToDomain() domain.Comment {
	return domain.Comment{
		ID:           m.ID,
		Text:         m.Text,
		AuthorID:     m.AuthorID,
		CreationTime: m.CreationTime,
	}
}
