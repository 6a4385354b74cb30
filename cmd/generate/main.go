package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"updown-sim-lab/internal/calendar"
	"updown-sim-lab/internal/observability"
	"updown-sim-lab/internal/source"
	"updown-sim-lab/internal/storage"
	chstore "updown-sim-lab/internal/storage/clickhouse"
	"updown-sim-lab/internal/storage/memory"
	"updown-sim-lab/internal/storage/migrations"
)

// eventJSON is the wire shape of one generated event.
type eventJSON struct {
	Source     string    `json:"source"`
	SecurityID string    `json:"security_id"`
	Kind       string    `json:"kind"`
	Price      float64   `json:"price"`
	Volume     int64     `json:"volume"`
	Timestamp  time.Time `json:"timestamp"`
}

func main() {
	// Parse flags
	securityID := flag.String("security-id", "", "Security ID to generate events for (required)")
	tradeCount := flag.Int("trade-count", 3, "Number of trade events to generate")
	amplitude := flag.Float64("amplitude", 10, "Price swing per step")
	basePrice := flag.Float64("base-price", 50, "Price the path oscillates around")

	// Storage
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse connection string")
	migrate := flag.Bool("migrate", false, "Apply schema migrations before writing")
	persist := flag.Bool("persist", false, "Persist generated events to storage")

	// Metrics
	metricsAddr := flag.String("metrics-addr", "", "Address to serve /metrics on (optional)")

	flag.Parse()

	logger := log.New(os.Stderr, "[generate] ", log.LstdFlags)

	if *securityID == "" {
		logger.Fatal("--security-id is required")
	}

	ctx := context.Background()

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", observability.Handler())
		go func() {
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				logger.Printf("metrics server: %v", err)
			}
		}()
	}

	env := calendar.NewEnvironment()
	src, last, err := source.GenerateUpDown(*securityID, *tradeCount, env, *basePrice, *amplitude)
	if err != nil {
		logger.Fatalf("generate source: %v", err)
	}
	env.PeriodEnd = last

	logger.Printf("Generated %s: %d events, %s .. %s",
		src.Name(), src.Len(),
		env.FirstOpen.Format(time.RFC3339), env.PeriodEnd.Format(time.RFC3339))

	if *persist {
		var eventStore storage.TradeEventStore = memory.NewTradeEventStore()

		if *clickhouseDSN != "" {
			conn, err := chstore.NewConn(ctx, *clickhouseDSN)
			if err != nil {
				logger.Fatalf("connect to clickhouse: %v", err)
			}
			defer conn.Close()

			if *migrate {
				if err := migrations.RunClickhouseMigrations(ctx, conn); err != nil {
					logger.Fatalf("apply clickhouse migrations: %v", err)
				}
			}

			eventStore = chstore.NewTradeEventStore(conn)
		}

		err := eventStore.InsertBulk(ctx, src.Name(), src.Events())
		if err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				logger.Fatalf("source %s already stored", src.Name())
			}
			logger.Fatalf("persist events: %v", err)
		}
		logger.Printf("Persisted %d events for %s", src.Len(), src.Name())
	}

	// Emit one JSON object per line
	enc := json.NewEncoder(os.Stdout)
	for _, ev := range src.Events() {
		line := eventJSON{
			Source:     src.Name(),
			SecurityID: ev.SecurityID,
			Kind:       string(ev.Kind),
			Price:      ev.Price,
			Volume:     ev.Volume,
			Timestamp:  ev.Timestamp,
		}
		if err := enc.Encode(line); err != nil {
			fmt.Fprintf(os.Stderr, "encode event: %v\n", err)
			os.Exit(1)
		}
	}
}
