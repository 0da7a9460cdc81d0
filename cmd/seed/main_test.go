package main

import (
	"context"
	"errors"
	"testing"

	"booksapi/internal/book"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
)

func TestSeed(t *testing.T) {
	other := fixtures[0]
	other.ISBN = "3333333333"

	t.Run("skips existing isbn", func(t *testing.T) {
		repo := book.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().Create(gomock.Any(), fixtures[0]).Return(book.Book{}, book.ErrConflict)
		repo.EXPECT().Create(gomock.Any(), other).Return(other, nil)

		n, err := seed(context.Background(), repo, []book.Book{fixtures[0], other})

		assert.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("stops on storage error", func(t *testing.T) {
		repo := book.NewMockRepository(gomock.NewController(t))
		repo.EXPECT().Create(gomock.Any(), fixtures[0]).Return(book.Book{}, errors.New("connection refused"))

		n, err := seed(context.Background(), repo, []book.Book{fixtures[0], other})

		assert.Error(t, err)
		assert.Equal(t, 0, n)
	})
}
