package domain

import "errors"

var (
	ErrRecordNotFound    = errors.New("record not found")
	ErrInvalidGenre      = errors.New("invalid genre ID")
	ErrPosterRequired    = errors.New("poster is required")
	ErrUnsupportedPoster = errors.New("only .jpg and .png images are allowed")
	ErrPosterTooLarge    = errors.New("poster exceeds the maximum allowed size")
)
