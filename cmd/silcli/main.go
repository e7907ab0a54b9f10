package main

import (
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/silence-labs/silence/app"
	"github.com/silence-labs/silence/cmd/silenced/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd(true)

	if err := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
