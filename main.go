package main

import (
	"os"

	"github.com/kiddanapp/kiddan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
