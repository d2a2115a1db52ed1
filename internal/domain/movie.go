package domain

import (
	"context"
	"strings"
)

type Movie struct {
	ID        int
	Title     string
	StoryLine string
	Year      int
	Rate      float64
	GenreID   int
	Genre     Genre
	Poster    []byte
}

type MovieFilters struct {
	GenreID *int
	Sort    string
}

func (f MovieFilters) SortColumn() string {
	return strings.TrimPrefix(f.Sort, "-")
}

func (f MovieFilters) SortDirection() string {
	if strings.HasPrefix(f.Sort, "-") {
		return "DESC"
	}

	return "ASC"
}

// MovieRepository persists movies. Every read returns movies joined with their genre.
type MovieRepository interface {
	GetAll(ctx context.Context, filters MovieFilters) ([]*Movie, error)
	GetById(ctx context.Context, id int) (*Movie, error)
	Create(ctx context.Context, movie *Movie) error
	Update(ctx context.Context, movie *Movie) error
	Delete(ctx context.Context, id int) (*Movie, error)
}
