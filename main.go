package main

import "relcast/cmd"

func main() {
	cmd.Execute()
}
