package main

import "github.com/convertifier/convertifier/cmd"

var version = "v0.1.0"

func main() {
	cmd.Execute(version)
}
