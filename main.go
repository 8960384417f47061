package main

import "github.com/ZacxDev/htmlgen/cmd"

func main() {
	cmd.Execute()
}
