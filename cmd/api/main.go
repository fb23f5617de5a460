package main

import (
	"os"

	"github.com/metinatakli/moviemate/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
