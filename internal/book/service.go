package book

import (
	"context"
)

// Service provides book-related business logic.
type Service struct {
	repo Repository
}

// NewService creates a new book service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns every book ordered by title.
func (s *Service) List(ctx context.Context) ([]Book, error) {
	return s.repo.List(ctx)
}

// GetByISBN returns a book by its ISBN.
func (s *Service) GetByISBN(ctx context.Context, isbn string) (Book, error) {
	return s.repo.GetByISBN(ctx, isbn)
}

// Create validates the payload and stores a new book.
func (s *Service) Create(ctx context.Context, payload []byte) (Book, error) {
	b, err := Validate(payload)
	if err != nil {
		return Book{}, err
	}
	return s.repo.Create(ctx, b)
}

// Update validates the payload and replaces the book stored under isbn.
// The payload may carry a different isbn, which renames the book.
func (s *Service) Update(ctx context.Context, isbn string, payload []byte) (Book, error) {
	b, err := Validate(payload)
	if err != nil {
		return Book{}, err
	}
	return s.repo.Update(ctx, isbn, b)
}

// Delete removes the book stored under isbn.
func (s *Service) Delete(ctx context.Context, isbn string) error {
	return s.repo.Delete(ctx, isbn)
}
