package main

import "github.com/OpenTraceLab/orcad2kicad/cmd/orcad2kicad/cmd"

func main() {
	cmd.Execute()
}
