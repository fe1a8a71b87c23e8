package main

import "github.com/alexiusacademia/gostud/cmd"

func main() {
	cmd.Execute()
}
