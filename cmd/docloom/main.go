package main

import (
	"github.com/docloom/docloom/internal/cli"
)

func main() {
	cli.Execute()
}
