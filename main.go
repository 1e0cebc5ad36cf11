package main

import (
	"os"

	"github.com/smartlearn/smartlearn/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
