package integration_test

import "encoding/base64"

const (
	TestMovieTitle     = "Inception"
	TestMovieStoryLine = "A thief who steals corporate secrets through dream-sharing technology."
	TestMovieYear      = 2010
	TestMovieRate      = 8.8

	// seeded by the genres migration
	TestGenreId       = 1
	TestGenreName     = "Action"
	TestSeededGenres  = 12
	TestUnknownGenre  = 999
	TestMissingMovie  = 4242
	TestMaxPosterSize = 6 << 20
)

var (
	TestPoster       = []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10}
	TestPosterBase64 = base64.StdEncoding.EncodeToString(TestPoster)
)
