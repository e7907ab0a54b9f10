package cmd

import (
	"testing"

	"github.com/spf13/cobra"
)

func findSubcommand(t *testing.T, parent *cobra.Command, name string) *cobra.Command {
	t.Helper()
	for _, sub := range parent.Commands() {
		if sub.Name() == name || sub.HasAlias(name) {
			return sub
		}
	}
	t.Fatalf("command %q not registered under %q", name, parent.Name())
	return nil
}

func TestRootCmdRegistersNodeLifecycle(t *testing.T) {
	initSDKConfig()
	root := NewRootCmd(true)

	for _, name := range []string{
		"init", "gentx", "collect-gentxs", "validate-genesis",
		"add-genesis-account", "keys", "start", "status", "tx", "query",
	} {
		findSubcommand(t, root, name)
	}
}

func TestTxCommandExposesBridgeOperations(t *testing.T) {
	initSDKConfig()
	root := NewRootCmd(true)

	bridge := findSubcommand(t, findSubcommand(t, root, "tx"), "bridge")
	for _, name := range []string{
		"create-intent", "register-solver", "match-intent", "execute-intent",
		"settle-intent", "fail-intent",
		"submit-amount-verification", "submit-privacy-proof", "submit-reputation-score",
	} {
		findSubcommand(t, bridge, name)
	}
}

func TestQueryCommandExposesBridgeState(t *testing.T) {
	initSDKConfig()
	root := NewRootCmd(true)

	bridge := findSubcommand(t, findSubcommand(t, root, "query"), "bridge")
	for _, name := range []string{
		"params", "intent", "intents", "solver", "active-solvers",
		"solvers-for-chains", "escrow", "stats", "pending-verifications",
	} {
		findSubcommand(t, bridge, name)
	}
}
