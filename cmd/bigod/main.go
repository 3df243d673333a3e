package main

import (
	"github.com/bigodev/bigod/pkg/cli"
)

func main() {
	cli.Execute()
}
