package main

import (
	"os"

	"moviebrowser/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
