// Command bootstrap-admin promotes the oldest registered account to
// admin and activates it, but only while the system has no admins.
// Run it once after the first signup to break the approval deadlock.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/sanfusis123/solo-leveling-backend/internal/config"
	"github.com/sanfusis123/solo-leveling-backend/internal/logger"
	"github.com/sanfusis123/solo-leveling-backend/internal/service"
	"github.com/sanfusis123/solo-leveling-backend/internal/storage/mongo"
)

func main() {
	var configFolder string
	flag.StringVar(&configFolder, "config_folder", "config", "path to folder with configs")
	flag.Parse()

	cfg := config.MustLoad(configFolder)
	logger.Initialize(cfg.Public.LogLevel, cfg.Public.LogJSON)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	storage, err := mongo.New(ctx, cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to connect to storage:", err)
		os.Exit(1)
	}
	defer storage.Cleanup(ctx)

	admin := service.NewAdmin(storage)
	user, err := admin.BootstrapFirstAdmin(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "bootstrap failed:", err)
		os.Exit(1)
	}

	fmt.Printf("promoted %s (%s) to admin\n", user.Username, user.ID.Hex())
}
