package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/prosumer-ledger-client/internal/adapter"
	"github.com/MKhiriev/prosumer-ledger-client/internal/config"
	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/internal/simulator"
	"github.com/MKhiriev/prosumer-ledger-client/models"
	"github.com/spf13/pflag"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	var flags config.StructuredConfig
	config.BindSimulatorFlags(pflag.CommandLine, &flags)
	pflag.Parse()

	log := logger.NewLogger("ledger-simulator")
	cfg, err := config.GetSimulatorConfig(&flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	publisher := adapter.NewSnapshotPublisher(cfg.PublishURL, adapter.NewHTTPTransport(), log)
	sim := simulator.New(publisher, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	resp, err := sim.Run(ctx)
	if err != nil {
		log.Error().Err(err).Msg("publish readings")
		stop()
		os.Exit(1)
	}

	fmt.Println(string(resp))
}
