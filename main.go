package main

import "github.com/Ivan-Kats/xlsx2update/cmd"

func main() {
	cmd.Execute()
}
