package mysql

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Guyuepp/go-clean-author-comment/domain"
	"github.com/Guyuepp/go-clean-author-comment/internal/repository/mysql/model"
)

// upsertAuthor overwrites every mapped column of an existing author row.
var upsertAuthor = clause.OnConflict{
	Columns:   []clause.Column{{Name: "id"}},
	DoUpdates: clause.AssignmentColumns([]string{"first_name", "last_name", "rating"}),
}

type authorRepository struct {
	DB *gorm.DB
}

var _ domain.AuthorRepository = (*authorRepository)(nil)

// NewAuthorRepository will create an implementation of domain.AuthorRepository
func NewAuthorRepository(db *gorm.DB) *authorRepository {
	return &authorRepository{
		DB: db,
	}
}

func (m *authorRepository) Fetch(ctx context.Context) ([]domain.Author, error) {
	var authors []model.Author
	err := m.DB.WithContext(ctx).
		Preload("Comments").
		Order("id").
		Find(&authors).Error
	if err != nil {
		return nil, err
	}

	res := make([]domain.Author, len(authors))
	for i := range authors {
		res[i] = authors[i].ToDomain()
	}
	return res, nil
}

func (m *authorRepository) GetByID(ctx context.Context, id int64) (domain.Author, error) {
	var author model.Author
	err := m.DB.WithContext(ctx).Preload("Comments").First(&author, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Author{}, domain.ErrNotFound
	}
	if err != nil {
		return domain.Author{}, err
	}
	return author.ToDomain(), nil
}

func (m *authorRepository) Store(ctx context.Context, a *domain.Author) error {
	authorModel := model.NewAuthorFromDomain(a)
	err := m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(authorModel).Error; err != nil {
			return err
		}
		if len(authorModel.Comments) == 0 {
			return nil
		}
		for i := range authorModel.Comments {
			authorModel.Comments[i].AuthorID = authorModel.ID
		}
		return tx.Create(&authorModel.Comments).Error
	})
	if err != nil {
		return err
	}

	a.ID = authorModel.ID
	for i := range authorModel.Comments {
		a.Comments[i].ID = authorModel.Comments[i].ID
		a.Comments[i].AuthorID = authorModel.ID
		a.Comments[i].CreationTime = authorModel.Comments[i].CreationTime
	}
	return nil
}

func (m *authorRepository) Update(ctx context.Context, a *domain.Author) error {
	authorModel := model.NewAuthorFromDomain(a)
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Clauses(upsertAuthor).Create(authorModel).Error; err != nil {
			return err
		}
		if len(authorModel.Comments) == 0 {
			return nil
		}
		if err := ensureOwnComments(tx, authorModel); err != nil {
			return err
		}
		return tx.Clauses(upsertComment).Create(&authorModel.Comments).Error
	})
}

// ensureOwnComments rejects listed comment ids that belong to another author,
// so the upsert cannot move them.
func ensureOwnComments(tx *gorm.DB, a *model.Author) error {
	ids := make([]int64, 0, len(a.Comments))
	for i := range a.Comments {
		if a.Comments[i].ID != 0 {
			ids = append(ids, a.Comments[i].ID)
		}
	}
	if len(ids) == 0 {
		return nil
	}

	var foreign int64
	err := tx.Model(&model.Comment{}).
		Where("id IN ? AND author_id <> ?", ids, a.ID).
		Count(&foreign).Error
	if err != nil {
		return err
	}
	if foreign > 0 {
		return fmt.Errorf("%w: comment owned by another author", domain.ErrConflict)
	}
	return nil
}

// Delete removes the comments first, so the cascade does not depend on the FK rule.
func (m *authorRepository) Delete(ctx context.Context, id int64) error {
	return m.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&model.Comment{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&model.Author{}, id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domain.ErrNotFound
		}
		return nil
	})
}

func (m *authorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var n int64
	err := m.DB.WithContext(ctx).
		Model(&model.Author{}).
		Where("id = ?", id).
		Count(&n).Error
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (m *authorRepository) FetchIDs(ctx context.Context, cursor, limit int64) (ids []int64, err error) {
	err = m.DB.WithContext(ctx).
		Model(&model.Author{}).
		Select("id").
		Where("id > ?", cursor).
		Order("id").
		Limit(int(limit)).
		Find(&ids).Error
	return
}
