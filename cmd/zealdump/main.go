package main

import (
	"os"

	"github.com/danmuck/zealdump/cmd/zealdump/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
