package main

import "game-launcher/cmd"

func main() {
	cmd.Execute()
}
