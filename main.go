package main

import "cms-api/cmd"

func main() {
	cmd.Execute()
}
