package main

import "github.com/blusalice3/sokubaikai/cmd"

func main() {
	cmd.Execute()
}
