package main

import (
	"fmt"
	"os"

	"github.com/saransh1220/artistly/cmd/artistctl/root"
)

func main() {
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
