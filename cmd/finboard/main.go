package main

import "github.com/finboard/finboard/internal/cli"

func main() {
	cli.Execute()
}
