package main

import (
	"github.com/dtownsend/battleword/internal/cli"
)

func main() {
	cli.Execute()
}
