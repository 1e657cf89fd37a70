package main

import "plancast/cmd"

func main() {
	cmd.Execute()
}
