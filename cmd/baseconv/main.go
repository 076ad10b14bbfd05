package main

import "baseconv/internal/cli"

func main() {
	cli.Main()
}
