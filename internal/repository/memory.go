package repository

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"sync"

	"github.com/metinatakli/movies-api/internal/domain"
)

// SeedGenres mirrors the genres inserted by the seed migration.
var SeedGenres = []domain.Genre{
	{ID: 1, Name: "Action"},
	{ID: 2, Name: "Adventure"},
	{ID: 3, Name: "Animation"},
	{ID: 4, Name: "Comedy"},
	{ID: 5, Name: "Crime"},
	{ID: 6, Name: "Documentary"},
	{ID: 7, Name: "Drama"},
	{ID: 8, Name: "Fantasy"},
	{ID: 9, Name: "Horror"},
	{ID: 10, Name: "Romance"},
	{ID: 11, Name: "Sci-Fi"},
	{ID: 12, Name: "Thriller"},
}

// MemoryStore keeps movies and genres in process memory. It enforces the same
// contract as the Postgres repositories, including the genre foreign key.
type MemoryStore struct {
	mu     sync.RWMutex
	nextID int
	movies map[int]domain.Movie
	genres map[int]domain.Genre
}

func NewMemoryStore(genres ...domain.Genre) *MemoryStore {
	s := &MemoryStore{
		nextID: 1,
		movies: make(map[int]domain.Movie),
		genres: make(map[int]domain.Genre, len(genres)),
	}

	for _, g := range genres {
		s.genres[g.ID] = g
	}

	return s
}

func (s *MemoryStore) Movies() *MemoryMovieRepository {
	return &MemoryMovieRepository{store: s}
}

func (s *MemoryStore) Genres() *MemoryGenreRepository {
	return &MemoryGenreRepository{store: s}
}

// joined returns a copy of m carrying its genre. Callers hold s.mu.
func (s *MemoryStore) joined(m domain.Movie) *domain.Movie {
	m.Genre = s.genres[m.GenreID]
	m.Poster = slices.Clone(m.Poster)

	return &m
}

type MemoryMovieRepository struct {
	store *MemoryStore
}

func (r *MemoryMovieRepository) GetAll(ctx context.Context, filters domain.MovieFilters) ([]*domain.Movie, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	movies := make([]*domain.Movie, 0, len(s.movies))
	for _, m := range s.movies {
		if filters.GenreID != nil && m.GenreID != *filters.GenreID {
			continue
		}

		movies = append(movies, s.joined(m))
	}

	desc := filters.SortDirection() == "DESC"
	column := filters.SortColumn()

	slices.SortFunc(movies, func(a, b *domain.Movie) int {
		var c int

		switch column {
		case "id":
			c = cmp.Compare(a.ID, b.ID)
		case "title":
			c = strings.Compare(a.Title, b.Title)
		case "year":
			c = cmp.Compare(a.Year, b.Year)
		default:
			c = cmp.Compare(a.Rate, b.Rate)
		}

		if desc {
			c = -c
		}
		if c == 0 {
			c = cmp.Compare(a.ID, b.ID)
		}

		return c
	})

	return movies, nil
}

func (r *MemoryMovieRepository) GetById(ctx context.Context, id int) (*domain.Movie, error) {
	s := r.store

	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return s.joined(m), nil
}

func (r *MemoryMovieRepository) Create(ctx context.Context, movie *domain.Movie) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	genre, ok := s.genres[movie.GenreID]
	if !ok {
		return domain.ErrInvalidGenre
	}

	movie.ID = s.nextID
	movie.Genre = genre
	s.nextID++

	stored := *movie
	stored.Poster = slices.Clone(movie.Poster)
	s.movies[movie.ID] = stored

	return nil
}

// Update overwrites every field of the movie. A nil Poster keeps the stored bytes,
// which are copied back into movie.Poster.
func (r *MemoryMovieRepository) Update(ctx context.Context, movie *domain.Movie) error {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.movies[movie.ID]
	if !ok {
		return domain.ErrRecordNotFound
	}

	genre, ok := s.genres[movie.GenreID]
	if !ok {
		return domain.ErrInvalidGenre
	}

	stored := *movie
	stored.Genre = genre
	if movie.Poster == nil {
		stored.Poster = existing.Poster
	} else {
		stored.Poster = slices.Clone(movie.Poster)
	}

	s.movies[movie.ID] = stored
	movie.Genre = genre
	movie.Poster = slices.Clone(stored.Poster)

	return nil
}

func (r *MemoryMovieRepository) Delete(ctx context.Context, id int) (*domain.Movie, error) {
	s := r.store

	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.movies[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	delete(s.movies, id)

	return s.joined(m), nil
}

type MemoryGenreRepository struct {
	store *MemoryStore
}

func (r *MemoryGenreRepository) Exists(ctx context.Context, id int) (bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	_, ok := r.store.genres[id]

	return ok, nil
}

func (r *MemoryGenreRepository) GetAll(ctx context.Context) ([]*domain.Genre, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	genres := make([]*domain.Genre, 0, len(r.store.genres))
	for _, g := range r.store.genres {
		genres = append(genres, &g)
	}

	slices.SortFunc(genres, func(a, b *domain.Genre) int {
		return strings.Compare(a.Name, b.Name)
	})

	return genres, nil
}
