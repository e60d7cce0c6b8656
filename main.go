package main

import "marstack/cmd"

func main() {
	cmd.Execute()
}
