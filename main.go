package main

import "zoo-manager/cmd"

func main() {
	cmd.Execute()
}
