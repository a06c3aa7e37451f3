package main

import "github.com/modalkit/modalscan/cmd"

func main() {
	cmd.Execute()
}
