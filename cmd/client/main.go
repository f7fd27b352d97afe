package main

import (
	"context"
	"os"

	"github.com/MKhiriev/prosumer-ledger-client/internal/adapter"
	"github.com/MKhiriev/prosumer-ledger-client/internal/client"
	"github.com/MKhiriev/prosumer-ledger-client/internal/config"
	"github.com/MKhiriev/prosumer-ledger-client/internal/logger"
	"github.com/MKhiriev/prosumer-ledger-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	log := logger.NewClientLogger("ledger")
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	newDataClient := func(cfg *config.ClientConfig) (adapter.DataClient, error) {
		return adapter.NewRemoteDataClient(cfg.Adapter, adapter.NewHTTPTransport(), log)
	}

	app := client.NewApp(newDataClient, buildInfo, log)
	os.Exit(app.Execute(context.Background(), os.Args[1:]))
}
