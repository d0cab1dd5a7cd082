package main

import "github.com/neu-ui/neu/cmd/neu/cmd"

func main() {
	cmd.Execute()
}
