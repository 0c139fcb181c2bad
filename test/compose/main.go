package main

import (
	"github.com/spf13/cobra"

	"github.com/quillpost/go-headers/test/compose/cmd"
)

func main() {
	err := cmd.Execute()
	cobra.CheckErr(err)
}
