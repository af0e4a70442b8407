package main

import "registre/cmd/registre/cmd"

func main() {
	cmd.Execute()
}
