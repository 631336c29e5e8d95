package main

import (
	"log"

	"github.com/mchmarny/recipe-finder/pkg/api"
)

func main() {
	if err := api.Serve(); err != nil {
		log.Fatal(err)
	}
}
