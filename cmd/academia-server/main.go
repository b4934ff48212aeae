package main

import (
	"context"
	"flag"
	"net/http"
	"os"

	"academia-backend/lib/browser"
	"academia-backend/lib/configutil"
	"academia-backend/lib/serviceutil"
	"academia-backend/services/academia"
)

func main() {
	verbose := flag.Bool("v", false, "Enable verbose logging/instrumentation.")
	flag.Parse()

	ctx := serviceutil.SignalContext()

	t := InitTelemetry(ctx, *verbose)
	defer t.Shutdown(context.Background())

	cfg, err := configutil.ReadConfig[Config]("config.json5")
	if err != nil && !os.IsNotExist(err) {
		serviceutil.Fatal("read config", err)
	}
	cfg.applyDefaults()

	svc := academia.NewService(academia.Options{
		BaseUrl: cfg.Portal.BaseUrl,
		Browser: browser.Options{
			Bin:      cfg.Browser.Bin,
			Headless: !cfg.Browser.Headful,
		},
	})

	mux := http.NewServeMux()
	svc.Register(mux)

	go serviceutil.StartHttpServer(
		cfg.Port,
		serviceutil.VerifyAccessToken(cfg.AccessToken, mux),
	)
	<-ctx.Done()
}
