package main

import "ecsh/cmd"

func main() {
	cmd.Execute()
}
