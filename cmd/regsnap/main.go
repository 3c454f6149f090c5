package main

import "github.com/custodia-labs/regsnap-cli/internal/adapters/driving/cli"

func main() {
	cli.Execute()
}
