package main

import (
	"context"

	"academia-backend/cmd/academia-cli/commands"
	"academia-backend/lib/telemetry"
)

func main() {
	telemetry.InitSlog(false)
	telemetry.SetupFromEnv(context.Background(), "academia-cli")
	commands.ExecuteContext(context.Background())
}
