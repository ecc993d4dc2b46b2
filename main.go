package main

import "ironseal/cmd"

func main() {
	cmd.Execute()
}
