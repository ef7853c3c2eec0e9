package mongo

import (
	"context"
	"log"
	"os"
	"testing"

	"github.com/testcontainers/testcontainers-go/modules/mongodb"

	"github.com/sanfusis123/solo-leveling-backend/internal/config"
)

var storage *Storage

func TestMain(m *testing.M) {
	ctx := context.Background()
	var container *mongodb.MongoDBContainer
	storage, container = mustSetup(ctx)
	defer teardown(ctx, storage, container)

	exitCode := m.Run()
	os.Exit(exitCode)
}

func mustSetup(ctx context.Context) (*Storage, *mongodb.MongoDBContainer) {
	container, err := mongodb.Run(ctx, "mongo:7")
	if err != nil {
		log.Fatalf("failed to start container: %s", err)
	}

	uri, err := container.ConnectionString(ctx)
	if err != nil {
		log.Fatalf("failed to obtain connection string: %s", err)
	}

	storage, err := New(ctx, &config.Config{Private: config.Private{
		MongoURI: uri,
		MongoDB:  "tracker_test",
	}})
	if err != nil {
		log.Fatalf("failed to connect to mongodb container: %s", err)
	}
	return storage, container
}

func teardown(ctx context.Context, storage *Storage, container *mongodb.MongoDBContainer) {
	if err := storage.Cleanup(ctx); err != nil {
		log.Printf("failed to close storage connection: %s", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("failed to terminate container: %s", err)
	}
}
