package main

import "github.com/alexiusacademia/goslope/cmd"

func main() {
	cmd.Execute()
}
