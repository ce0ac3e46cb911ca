package main

import "hbudget/cmd"

func main() {
	cmd.Execute()
}
