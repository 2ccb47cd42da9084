package main

import "github.com/austral-labs/xrplgo/internal/cli"

func main() {
	cli.Execute()
}
