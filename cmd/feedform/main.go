package main

import (
	"fmt"
	"os"

	"github.com/reoring/feedform/internal/commands"
)

func main() {
	err := commands.RootCmd().Execute()
	if err != nil {
		if _, silent := err.(*commands.ExitError); !silent {
			fmt.Fprintln(os.Stderr, "feedform:", err)
		}
	}
	os.Exit(commands.ExitCode(err))
}
