package main

import (
	"os"

	"github.com/schmitthub/brickyard/internal/brickyard"
)

func main() {
	os.Exit(brickyard.Main())
}
