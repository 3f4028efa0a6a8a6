package main

import "github.com/mouse-blink/bitrot/cmd"

func main() {
	cmd.Execute()
}
