package main

import "mtg-collector/cmd"

func main() {
	cmd.Execute()
}
