package main

import "github.com/km-arc/go-dep/cmd"

func main() {
	cmd.Execute()
}
