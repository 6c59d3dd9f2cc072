package main

import "github.com/fragmede/bidcraft/internal/cli"

func main() {
	cli.Execute()
}
