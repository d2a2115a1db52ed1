package domain

import "context"

type Genre struct {
	ID   int
	Name string
}

type GenreRepository interface {
	Exists(ctx context.Context, id int) (bool, error)
	GetAll(ctx context.Context) ([]*Genre, error)
}
