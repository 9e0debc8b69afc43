package main

import "github.com/tranvictor/prize/cmd"

func main() {
	cmd.Execute()
}
