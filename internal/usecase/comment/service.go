package comment

import (
	"context"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"

	"github.com/Guyuepp/go-clean-author-comment/domain"
)

type service struct {
	commentRepo domain.CommentRepository
	authorRepo  domain.AuthorRepository
	bloomRepo   domain.BloomRepository
	authorGroup singleflight.Group
}

var _ domain.CommentUsecase = (*service)(nil)

func NewService(commentRepo domain.CommentRepository, authorRepo domain.AuthorRepository, bloomRepo domain.BloomRepository) *service {
	return &service{
		commentRepo: commentRepo,
		authorRepo:  authorRepo,
		bloomRepo:   bloomRepo,
	}
}

// authorLookupTimeout bounds a shared author lookup, which outlives any single caller.
const authorLookupTimeout = 5 * time.Second

// resolveAuthor checks that the author exists and links c to it.
func (s *service) resolveAuthor(ctx context.Context, c *domain.Comment) error {
	exists, err := s.bloomRepo.Exists(ctx, c.AuthorID)
	if err != nil {
		logrus.Warnf("bloom filter unavailable, falling back to db: %v", err)
	} else if !exists {
		logrus.Warnf("bloom filter says author %d does not exist", c.AuthorID)
		return domain.ErrUnknownAuthor
	}

	// 同一作者的并发查询合并为一次
	id := c.AuthorID
	ch := s.authorGroup.DoChan(strconv.FormatInt(id, 10), func() (any, error) {
		lookupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), authorLookupTimeout)
		defer cancel()
		return s.authorRepo.Exists(lookupCtx, id)
	})

	select {
	case <-ctx.Done():
		return ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return res.Err
		}
		if !res.Val.(bool) {
			return domain.ErrUnknownAuthor
		}
	}
	c.Author = &domain.Author{ID: id}
	return nil
}

func (s *service) Fetch(ctx context.Context) ([]domain.Comment, error) {
	logrus.Info("fetch all comments")
	return s.commentRepo.Fetch(ctx)
}

func (s *service) GetByID(ctx context.Context, id int64) (domain.Comment, error) {
	logrus.Infof("get comment by id %d", id)
	return s.commentRepo.GetByID(ctx, id)
}

func (s *service) Store(ctx context.Context, c *domain.Comment) error {
	logrus.Infof("create comment for author %d", c.AuthorID)
	if err := s.resolveAuthor(ctx, c); err != nil {
		return err
	}
	return s.commentRepo.Store(ctx, c)
}

func (s *service) Update(ctx context.Context, c *domain.Comment) error {
	logrus.Infof("update comment %d", c.ID)
	if err := s.resolveAuthor(ctx, c); err != nil {
		return err
	}
	return s.commentRepo.Update(ctx, c)
}

func (s *service) Delete(ctx context.Context, id int64) error {
	logrus.Infof("delete comment %d", id)
	return s.commentRepo.Delete(ctx, id)
}
