package main

import (
	"os"

	"github.com/yassirfh/shopforge/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
