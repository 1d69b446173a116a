package main

import (
	"os"

	"github.com/fdkevin0/prettyprint/internal/cli"
)

func main() {
	// Run CLI entrypoint.
	os.Exit(cli.Run())
}
