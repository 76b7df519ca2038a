package main

import (
	"os"

	"github.com/thenoetrevino/orderbook/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
