package main

import "drawfetch/internal/cli"

func main() {
	cli.Execute()
}
