package main

import "github.com/pymk/pymk/cmd"

func main() {
	cmd.Execute()
}
