// tileplan solves sliding-tile puzzles with weighted A*.
package main

import (
	"os"

	"github.com/pdrpinto/tileplan/internal/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
