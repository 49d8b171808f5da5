package main

import "itemdeck/internal/cli"

func main() {
	cli.Execute()
}
