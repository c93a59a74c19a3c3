package main

import "github.com/notargets/swbench/cmd"

func main() {
	cmd.Execute()
}
