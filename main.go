package main

import "fullstack-starter/cmd"

func main() {
	cmd.Execute()
}
