//go:build !ebiten

package main

import (
	"fmt"
	"os"

	"torus-life/internal/config"
)

func runGUI(*config.Config) error {
	fmt.Fprintln(os.Stderr, "The GUI build of life requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or use `life tui`.")
	os.Exit(2)
	return nil
}
