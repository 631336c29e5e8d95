package main

import "github.com/mchmarny/recipe-finder/pkg/cli"

func main() {
	cli.Execute()
}
