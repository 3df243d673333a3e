package main

import (
	"log"

	"github.com/bigodev/bigod/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
