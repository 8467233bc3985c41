package main

import (
	"github.com/forgelab/forge/cmd/forge/internal"
)

func main() {
	internal.Execute()
}
