package main

import (
	"flowledger/cmd"
	"fmt"
	"os"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "flowledger stopped: %s\n", err)
		os.Exit(1)
	}
}
