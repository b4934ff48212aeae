package main

import (
	"context"
	"log/slog"
	"os"

	"academia-backend/lib/restyutil"
	scraper "academia-backend/lib/scrapers/academia"
	"academia-backend/lib/serviceutil"
	"academia-backend/lib/telemetry"
)

func InitTelemetry(ctx context.Context, verbose bool) telemetry.Telemetry {
	telemetry.InitSlog(verbose)

	t, err := telemetry.SetupFromEnv(ctx, "academia-server")
	if os.IsNotExist(err) {
		slog.Warn("telemetry.json5 not found, otlp export disabled")
	} else if err != nil {
		serviceutil.Fatal("setup telemetry", err)
	}
	telemetry.InstrumentPerfStats(ctx)

	if verbose {
		scraper.SetRestyInstrumentOutput(
			restyutil.NewFilesystemOutput(".dev/resty/academia"),
		)
	}
	return t
}
