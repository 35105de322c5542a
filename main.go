package main

import "github.com/juanibiapina/sideswipe/cmd"

func main() {
	cmd.Execute()
}
