package main

import "github.com/GoldenEraGlobal/cryptog/cmd/cryptog-cli/cmd"

func main() {
	cmd.Execute()
}
