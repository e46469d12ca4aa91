package main

import (
	"os"

	"github.com/selah-app/selah/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
