package main

import "github.com/walteros-labs/maxclique/cmd"

var version string

func main() {
	cmd.Execute(version)
}
