package main

import (
	"os"

	"najma_site_go/cmd/sitectl/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
