package main

import "github.com/geolens-io/geolens/internal/cli"

func main() {
	cli.Execute()
}
