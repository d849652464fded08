package main

import (
	"fmt"
	"os"

	"fjacquet/spendwise/cmd/forecast"
	"fjacquet/spendwise/cmd/normalize"
	"fjacquet/spendwise/cmd/periods"
	"fjacquet/spendwise/cmd/root"
	"fjacquet/spendwise/cmd/summary"
	"fjacquet/spendwise/cmd/vocabulary"
	"fjacquet/spendwise/cmd/waste"
)

func init() {
	root.Init()

	root.Cmd.AddCommand(summary.Cmd)
	root.Cmd.AddCommand(waste.Cmd)
	root.Cmd.AddCommand(forecast.Cmd)
	root.Cmd.AddCommand(periods.Cmd)
	root.Cmd.AddCommand(normalize.Cmd)
	root.Cmd.AddCommand(vocabulary.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
