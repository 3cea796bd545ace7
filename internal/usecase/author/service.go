package author

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/go-clean-author-comment/domain"
)

type Service struct {
	authorRepo domain.AuthorRepository
	bloomRepo  domain.BloomRepository
}

var _ domain.AuthorUsecase = (*Service)(nil)

// NewService will create a new author service object
func NewService(a domain.AuthorRepository, b domain.BloomRepository) *Service {
	return &Service{
		authorRepo: a,
		bloomRepo:  b,
	}
}

func (s *Service) Fetch(ctx context.Context) ([]domain.Author, error) {
	logrus.Info("fetch all authors")
	return s.authorRepo.Fetch(ctx)
}

func (s *Service) GetByID(ctx context.Context, id int64) (domain.Author, error) {
	logrus.Infof("get author by id %d", id)
	return s.authorRepo.GetByID(ctx, id)
}

func (s *Service) Store(ctx context.Context, a *domain.Author) error {
	if a.Comments == nil {
		return domain.ErrBadParamInput
	}
	if err := s.authorRepo.Store(ctx, a); err != nil {
		return err
	}
	logrus.Infof("created author %d with %d comments", a.ID, len(a.Comments))
	s.remember(ctx, a.ID)
	return nil
}

// Update overwrites the author keyed by a.ID; an unknown id is inserted.
func (s *Service) Update(ctx context.Context, a *domain.Author) error {
	if a.Comments == nil {
		return domain.ErrBadParamInput
	}
	if err := s.authorRepo.Update(ctx, a); err != nil {
		return err
	}
	logrus.Infof("updated author %d", a.ID)
	s.remember(ctx, a.ID)
	return nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	logrus.Infof("delete author %d", id)
	return s.authorRepo.Delete(ctx, id)
}

// remember adds the id to the bloom filter; failures are only logged.
func (s *Service) remember(ctx context.Context, id int64) {
	if err := s.bloomRepo.Add(ctx, id); err != nil {
		logrus.Warnf("failed to add author %d to bloom filter: %v", id, err)
	}
}
