package main

import (
	"github.com/inzpektor/soroban-proof-data/cmd"
)

func main() {
	cmd.Execute()
}
