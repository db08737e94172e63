package main

import "shortage-tracker/cmd"

func main() {
	cmd.Execute()
}
