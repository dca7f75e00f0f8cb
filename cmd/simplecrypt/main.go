package main

import (
	"os"

	"github.com/saylorsolutions/simplecrypt/cmd/internal"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		internal.Fatal("Error: %v", err)
	}
}
