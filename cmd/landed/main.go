package main

import (
	"os"

	"github.com/clintrovert/landed/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
