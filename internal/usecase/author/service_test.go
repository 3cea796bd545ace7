package author_test

import (
	"context"
	"errors"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Guyuepp/go-clean-author-comment/domain"
	"github.com/Guyuepp/go-clean-author-comment/domain/mocks"
	"github.com/Guyuepp/go-clean-author-comment/internal/usecase/author"
)

func fakeAuthor() domain.Author {
	return domain.Author{
		ID:        1,
		FirstName: faker.FirstName(),
		LastName:  faker.LastName(),
		Rating:    3,
		Comments:  []domain.Comment{},
	}
}

func TestFetch(t *testing.T) {
	mockRepo := new(mocks.AuthorRepository)
	mockBloom := new(mocks.BloomRepository)
	a := fakeAuthor()
	a.Comments = []domain.Comment{{ID: 1, Text: faker.Sentence(), AuthorID: 1}}

	mockRepo.On("Fetch", mock.Anything).Return([]domain.Author{a}, nil).Once()

	s := author.NewService(mockRepo, mockBloom)
	list, err := s.Fetch(context.TODO())
	require.NoError(t, err)
	assert.Equal(t, []domain.Author{a}, list)
	mockRepo.AssertExpectations(t)
}

func TestGetByID(t *testing.T) {
	mockRepo := new(mocks.AuthorRepository)
	mockBloom := new(mocks.BloomRepository)
	a := fakeAuthor()

	t.Run("success", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(1)).Return(a, nil).Once()

		s := author.NewService(mockRepo, mockBloom)
		res, err := s.GetByID(context.TODO(), 1)
		require.NoError(t, err)
		assert.Equal(t, a, res)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not-found", func(t *testing.T) {
		mockRepo.On("GetByID", mock.Anything, int64(2)).Return(domain.Author{}, domain.ErrNotFound).Once()

		s := author.NewService(mockRepo, mockBloom)
		_, err := s.GetByID(context.TODO(), 2)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}

func TestStore(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(mocks.AuthorRepository)
		mockBloom := new(mocks.BloomRepository)
		a := fakeAuthor()
		a.ID = 0

		mockRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Author")).
			Run(func(args mock.Arguments) {
				args.Get(1).(*domain.Author).ID = 9
			}).
			Return(nil).Once()
		mockBloom.On("Add", mock.Anything, int64(9)).Return(nil).Once()

		s := author.NewService(mockRepo, mockBloom)
		require.NoError(t, s.Store(context.TODO(), &a))
		assert.Equal(t, int64(9), a.ID)
		mockRepo.AssertExpectations(t)
		mockBloom.AssertExpectations(t)
	})

	t.Run("nil-comments", func(t *testing.T) {
		mockRepo := new(mocks.AuthorRepository)
		mockBloom := new(mocks.BloomRepository)
		a := fakeAuthor()
		a.Comments = nil

		s := author.NewService(mockRepo, mockBloom)
		assert.ErrorIs(t, s.Store(context.TODO(), &a), domain.ErrBadParamInput)
		mockRepo.AssertNotCalled(t, "Store", mock.Anything, mock.Anything)
	})

	t.Run("bloom-failure-is-not-fatal", func(t *testing.T) {
		mockRepo := new(mocks.AuthorRepository)
		mockBloom := new(mocks.BloomRepository)
		a := fakeAuthor()

		mockRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Author")).Return(nil).Once()
		mockBloom.On("Add", mock.Anything, a.ID).Return(errors.New("redis down")).Once()

		s := author.NewService(mockRepo, mockBloom)
		assert.NoError(t, s.Store(context.TODO(), &a))
		mockBloom.AssertExpectations(t)
	})

	t.Run("repository-error", func(t *testing.T) {
		mockRepo := new(mocks.AuthorRepository)
		mockBloom := new(mocks.BloomRepository)
		a := fakeAuthor()

		mockRepo.On("Store", mock.Anything, mock.AnythingOfType("*domain.Author")).
			Return(errors.New("unexpected")).Once()

		s := author.NewService(mockRepo, mockBloom)
		assert.Error(t, s.Store(context.TODO(), &a))
		mockBloom.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		mockRepo := new(mocks.AuthorRepository)
		mockBloom := new(mocks.BloomRepository)
		a := fakeAuthor()

		mockRepo.On("Update", mock.Anything, &a).Return(nil).Once()
		mockBloom.On("Add", mock.Anything, a.ID).Return(nil).Once()

		s := author.NewService(mockRepo, mockBloom)
		assert.NoError(t, s.Update(context.TODO(), &a))
		mockRepo.AssertExpectations(t)
		mockBloom.AssertExpectations(t)
	})

	t.Run("nil-comments", func(t *testing.T) {
		mockRepo := new(mocks.AuthorRepository)
		mockBloom := new(mocks.BloomRepository)
		a := fakeAuthor()
		a.Comments = nil

		s := author.NewService(mockRepo, mockBloom)
		assert.ErrorIs(t, s.Update(context.TODO(), &a), domain.ErrBadParamInput)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestDelete(t *testing.T) {
	mockRepo := new(mocks.AuthorRepository)
	mockBloom := new(mocks.BloomRepository)

	t.Run("success", func(t *testing.T) {
		mockRepo.On("Delete", mock.Anything, int64(1)).Return(nil).Once()

		s := author.NewService(mockRepo, mockBloom)
		assert.NoError(t, s.Delete(context.TODO(), 1))
		mockRepo.AssertExpectations(t)
	})

	t.Run("not-found", func(t *testing.T) {
		mockRepo.On("Delete", mock.Anything, int64(2)).Return(domain.ErrNotFound).Once()

		s := author.NewService(mockRepo, mockBloom)
		assert.ErrorIs(t, s.Delete(context.TODO(), 2), domain.ErrNotFound)
		mockRepo.AssertExpectations(t)
	})
}
