//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The GUI build of snaken requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/snaken` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "Use ./cmd/snaken-server to drive episodes over HTTP instead.")
	os.Exit(2)
}
