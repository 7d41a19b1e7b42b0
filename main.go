package main

import "github.com/medkb/sympta-cli/cmd"

func main() {
	cmd.Execute()
}
