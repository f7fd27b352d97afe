package main

import (
	"fmt"

	"github.com/MKhiriev/prosumer-ledger-client/internal/config"
	handler "github.com/MKhiriev/prosumer-ledger-client/internal/handler/http"
	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/internal/server"
	"github.com/MKhiriev/prosumer-ledger-client/internal/store"
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
	applyAddress := config.BindStubServerFlags(pflag.CommandLine, &flags)
	pflag.Parse()
	applyAddress()

	log := logger.NewLogger("ledger-stub-server")
	cfg, err := config.GetStubServerConfig(&flags)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	h := handler.NewHandler(store.NewMemoryLedger(), log)

	srv, err := server.NewServer(h, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
