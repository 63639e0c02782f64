package main

import "github.com/gregorybchris/typogenetics/cmd"

func main() {
	cmd.Execute() // initialize cobra commands
}
