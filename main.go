package main

import "nhl-scores/cmd"

func main() {
	cmd.Execute()
}
