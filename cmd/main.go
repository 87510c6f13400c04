package main

import (
	cmd "github.com/kerbaras/purrfect/cmd/purrfect"
)

func main() {
	cmd.Execute()
}
