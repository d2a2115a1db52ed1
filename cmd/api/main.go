package main

import (
	"os"

	"github.com/metinatakli/movies-api/internal/app"
)

func main() {
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
