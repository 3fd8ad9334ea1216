// Command astrochart computes astrological chart data: house cusps,
// sensitive points, aspects and stelliums for a moment and place.
package main

import (
	"os"

	"github.com/ilbagatto/go-astrologer/cmd/astrochart/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
