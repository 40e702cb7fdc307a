package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"

	"github.com/beetools/bee/cmd"
)

// overridden with -ldflags "-X main.version=..." for releases
var version = "dev"

func main() {
	if err := fang.Execute(context.Background(), cmd.Root(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}
