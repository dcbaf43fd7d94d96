package main

import (
	"context"
	"time"

	"dojoroll/config"
	"dojoroll/controllers"
	"dojoroll/routes"
	"dojoroll/store"
	"dojoroll/utils"
)

func main() {
	cfg := config.Load()

	// Initialize logger early
	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	// One authenticated store client, reused across all requests. Missing
	// credentials halt the process here, before the server binds.
	client := config.InitFirestore(context.Background())
	defer client.Close()
	st := store.NewFirestoreStore(client)

	r := routes.SetupRouter(st)

	if cfg.MilestoneScanMinutes > 0 {
		scanner := controllers.NewMilestoneController(st, utils.Logger)
		scanner.StartScanWorker(time.Duration(cfg.MilestoneScanMinutes) * time.Minute)
	}

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
