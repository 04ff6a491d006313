package main

import "github.com/Styt0/airwave-aggregator/cmd/airwave-aggregator/cmd"

var version string // set by the compiler

func main() {
	cmd.Execute(version)
}
