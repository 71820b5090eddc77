package main

import "finforge/cmd"

func main() {
	cmd.Execute()
}
