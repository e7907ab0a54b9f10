package main

import (
	"context"
	"fmt"
	"os"

	svrcmd "github.com/cosmos/cosmos-sdk/server/cmd"

	"github.com/silence-labs/silence/app"
	"github.com/silence-labs/silence/cmd/silenced/cmd"
)

func main() {
	home := resolveNodeHome(os.Args[1:])
	metricsPort, healthPort := loadTelemetryPorts(home)
	rpcEndpoint := resolveRPCAddress(home)

	startMetricsServer(metricsPort)
	startHealthServer(healthPort, newCometProbe(rpcEndpoint))

	if tel, err := app.InitTelemetry(app.TelemetryConfigFromEnv()); err != nil {
		fmt.Fprintf(os.Stderr, "telemetry: %v\n", err)
	} else {
		defer func() { _ = tel.Shutdown(context.Background()) }()
	}

	rootCmd := cmd.NewRootCmd(false)

	if err := svrcmd.Execute(rootCmd, "", app.DefaultNodeHome); err != nil {
		os.Exit(1)
	}
}
