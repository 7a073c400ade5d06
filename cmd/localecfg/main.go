package main

import (
	"os"

	"github.com/bluefeet/config-locale/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
