// Command backup exports or restores the collection ledger directly against
// the configured storage backend, for offline use while the server is down.
//
//	backup -out collection.json          # export
//	backup -restore -in collection.json  # import
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/binderapp/binder/internal/bootstrap"
	"github.com/binderapp/binder/internal/collection"
	"github.com/binderapp/binder/internal/config"
	"github.com/binderapp/binder/internal/event"
)

func main() {
	outPath := flag.String("out", "collection.json", "export destination file")
	restore := flag.Bool("restore", false, "restore the ledger instead of exporting")
	inPath := flag.String("in", "", "file to restore from (required with -restore)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := bootstrap.InitializeStorage(cfg)
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	// No subscribers in a one-shot CLI; events go nowhere
	svc := collection.NewService(store, event.NewMemoryBus())
	ctx := context.Background()
	if err := svc.Load(ctx); err != nil {
		log.Fatalf("Failed to load collection: %v", err)
	}

	if *restore {
		if *inPath == "" {
			log.Fatal("-restore requires -in <file>")
		}
		payload, err := os.ReadFile(*inPath)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *inPath, err)
		}
		result, err := svc.Import(ctx, payload)
		if err != nil {
			log.Fatalf("Restore failed: %v", err)
		}
		fmt.Printf("Restored %d entries (%d dropped)\n", result.Kept, result.Dropped)
		return
	}

	payload, err := svc.Export(ctx)
	if err != nil {
		log.Fatalf("Export failed: %v", err)
	}
	if err := os.WriteFile(*outPath, payload, 0644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}
	fmt.Printf("Exported collection to %s\n", *outPath)
}
