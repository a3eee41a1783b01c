package main

import "github.com/jsphweid/sfextract/cmd"

func main() {
	cmd.Execute()
}
