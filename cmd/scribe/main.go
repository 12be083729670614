package main

import (
	"fmt"
	"os"

	"github.com/iw2rmb/scribe"
	"github.com/iw2rmb/scribe/internal/cmd"
)

func root() int {
	root := cmd.Root()
	root.Version = scribe.Version()
	if err := root.Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err.Error())
		return 1
	}
	return 0
}

func main() {
	os.Exit(root())
}
