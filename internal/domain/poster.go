package domain

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
)

const DefaultMaxPosterSize int64 = 6 << 20

var DefaultPosterExtensions = []string{".jpg", ".png"}

// PosterPolicy holds the upload rules for movie posters. Only the file name
// extension and the declared size are inspected, never the content.
type PosterPolicy struct {
	maxSize    int64
	extensions []string
}

func NewPosterPolicy(maxSize int64, extensions ...string) PosterPolicy {
	normalized := make([]string, 0, len(extensions))

	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		if !slices.Contains(normalized, ext) {
			normalized = append(normalized, ext)
		}
	}

	return PosterPolicy{
		maxSize:    maxSize,
		extensions: normalized,
	}
}

func DefaultPosterPolicy() PosterPolicy {
	return NewPosterPolicy(DefaultMaxPosterSize, DefaultPosterExtensions...)
}

func (p PosterPolicy) MaxSize() int64 {
	return p.maxSize
}

func (p PosterPolicy) Extensions() []string {
	return slices.Clone(p.extensions)
}

// Validate checks the extension before the size, so a disallowed type is
// reported no matter how large the file is.
func (p PosterPolicy) Validate(filename string, size int64) error {
	ext := strings.ToLower(filepath.Ext(filename))
	if !slices.Contains(p.extensions, ext) {
		return ErrUnsupportedPoster
	}

	if size > p.maxSize {
		return fmt.Errorf("%w of %d bytes", ErrPosterTooLarge, p.maxSize)
	}

	return nil
}
