package main

import (
	"context"
	"errors"
	"log"

	"booksapi/internal/book"
	"booksapi/internal/config"
	"booksapi/internal/platform/postgres"
)

var fixtures = []book.Book{
	{
		ISBN:      "0691161518",
		AmazonURL: "http://a.co/eobPtX2",
		Author:    "Matthew Lane",
		Language:  "english",
		Pages:     264,
		Publisher: "Princeton University Press",
		Title:     "Power-Up: Unlocking the Hidden Mathematics in Video Games",
		Year:      2017,
	},
}

func main() {
	config.LoadEnvFiles()
	cfg := config.Load()
	ctx := context.Background()

	pool, err := postgres.Open(ctx, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	inserted, err := seed(ctx, book.NewPostgresRepo(pool, cfg.QueryTimeout), fixtures)
	if err != nil {
		log.Fatalf("Failed to seed books: %v", err)
	}
	log.Printf("Seeded %d of %d books", inserted, len(fixtures))
}

// seed inserts each book, skipping ones whose isbn is already stored.
func seed(ctx context.Context, repo book.Repository, books []book.Book) (int, error) {
	inserted := 0
	for _, b := range books {
		if _, err := repo.Create(ctx, b); err != nil {
			if errors.Is(err, book.ErrConflict) {
				log.Printf("seed: isbn=%s already present, skipping", b.ISBN)
				continue
			}
			return inserted, err
		}
		inserted++
	}
	return inserted, nil
}
