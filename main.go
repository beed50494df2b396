package main

import "os-project/cmd"

func main() {
	cmd.Execute()
}
