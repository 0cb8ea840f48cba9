package main

import (
	"linescan/cli"
)

func main() {
	cli.Start()
}
