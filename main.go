package main

import "github.com/xhuliohasa/flight-search-engine/internal/cli"

func main() {
	cli.Execute()
}
