package main

import "github.com/nathanhack/cardcodes/cmd"

func main() {
	cmd.Execute()
}
