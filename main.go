package main

import (
	"os"

	"github.com/chris-regnier/diarycal/cmd"
)

func main() {
	os.Exit(cmd.Execute())
}
