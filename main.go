package main

import "hr-sync/cmd"

func main() {
	cmd.Execute()
}
