package main

import (
	"github.com/blockfall/blockfall/internal/cli"
)

func main() {
	cli.Execute()
}
