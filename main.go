package main

import "github.com/fusionatg/tankcal-cli/cmd"

func main() {
	cmd.Execute()
}
