package main

import (
	"context"
	"os"

	"github.com/TopiaNetwork/gascost/cmd"
)

func main() {
	if cmd.GasCostCmd().ExecuteContext(context.Background()) != nil {
		os.Exit(1)
	}
}
