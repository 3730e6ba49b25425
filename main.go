package main

import "portside/cmd"

func main() {
	cmd.Execute()
}
