package main

import "github.com/katalvlaran/jdmgraph/internal/cli"

var version = "dev"

func main() {
	cli.Execute(version)
}
