package book

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotFound is returned when no book matches the requested ISBN.
	ErrNotFound = errors.New("book not found")
	// ErrConflict is returned when a write would duplicate an existing ISBN.
	ErrConflict = errors.New("book with this isbn already exists")
)

// Book represents a book entity.
type Book struct {
	ISBN      string `json:"isbn" validate:"notblank"`
	AmazonURL string `json:"amazon_url"`
	Author    string `json:"author"`
	Language  string `json:"language"`
	Pages     int    `json:"pages" validate:"gte=0"`
	Publisher string `json:"publisher"`
	Title     string `json:"title"`
	Year      int    `json:"year"`
}

// FieldError describes a single rejected field of a book payload.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError lists every field that failed validation.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		msgs = append(msgs, f.Message)
	}
	return fmt.Sprintf("invalid book: %s", strings.Join(msgs, "; "))
}
