package main

import (
	"fmt"
	"os"

	"github.com/ytget/ytdl-desktop/internal/desktop"
)

// version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

func main() {
	if err := desktop.Run(version); err != nil {
		fmt.Fprintf(os.Stderr, "ytdl-desktop: %v\n", err)
		os.Exit(1)
	}
}
