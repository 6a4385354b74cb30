package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"updown-sim-lab/internal/domain"
	"updown-sim-lab/internal/harness"
	"updown-sim-lab/internal/storage"
	chstore "updown-sim-lab/internal/storage/clickhouse"
	"updown-sim-lab/internal/storage/memory"
	"updown-sim-lab/internal/storage/migrations"
	pgstore "updown-sim-lab/internal/storage/postgres"
)

func main() {
	// Parse flags
	securityID := flag.String("security-id", "", "Security ID to simulate (required)")
	tradeCount := flag.Int("trade-count", -1, "Number of trade events to generate (default 3)")
	amplitude := flag.Float64("amplitude", -1, "Price swing per step (default 10)")
	basePrice := flag.Float64("base-price", -1, "Price the path oscillates around (default 50)")
	offset := flag.Float64("offset", 0, "Order quantity shift applied to the default strategy")

	// Storage
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse connection string")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage")
	migrate := flag.Bool("migrate", false, "Apply schema migrations before running")

	// Output
	runSim := flag.Bool("run", true, "Execute the run; false composes and prints the configuration only")
	outputJSON := flag.Bool("json", false, "Output as JSON")
	persistResult := flag.Bool("persist", false, "Persist run record and trade events to storage")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stderr, "[backtest] ", log.LstdFlags)

	// Validate required flags
	if *securityID == "" {
		logger.Fatal("--security-id is required")
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, shutting down...", sig)
		cancel()
	}()

	// Create stores
	var runStore storage.RunRecordStore = memory.NewRunRecordStore()
	var eventStore storage.TradeEventStore = memory.NewTradeEventStore()

	if *persistResult && !*useMemory {
		if *postgresDSN == "" {
			logger.Fatal("--postgres-dsn is required when persisting without --use-memory (run records)")
		}
		if *clickhouseDSN == "" {
			logger.Fatal("--clickhouse-dsn is required when persisting without --use-memory (trade events)")
		}

		// PostgreSQL for run records
		pool, err := pgstore.NewPool(ctx, *postgresDSN)
		if err != nil {
			logger.Fatalf("connect to postgres: %v", err)
		}
		defer pool.Close()

		// ClickHouse for trade events
		conn, err := chstore.NewConn(ctx, *clickhouseDSN)
		if err != nil {
			logger.Fatalf("connect to clickhouse: %v", err)
		}
		defer conn.Close()

		if *migrate {
			if err := migrations.RunPostgresMigrations(ctx, pool); err != nil {
				logger.Fatalf("apply postgres migrations: %v", err)
			}
			if err := migrations.RunClickhouseMigrations(ctx, conn); err != nil {
				logger.Fatalf("apply clickhouse migrations: %v", err)
			}
		}

		runStore = pgstore.NewRunRecordStore(pool)
		eventStore = chstore.NewTradeEventStore(conn)
	}

	// Build the run spec from CLI flags
	spec := harness.RunSpec{SecurityID: *securityID}
	if *tradeCount >= 0 {
		spec.TradeCount = tradeCount
	}
	if *amplitude >= 0 {
		spec.Amplitude = amplitude
	}
	if *basePrice >= 0 {
		spec.BasePrice = basePrice
	}

	if !*runSim {
		_, resolved, err := harness.Compose(spec, *offset)
		if err != nil {
			logger.Fatalf("compose failed: %v", err)
		}
		printResolved(resolved)
		return
	}

	logger.Printf("Running backtest: security=%s", *securityID)

	handle, resolved, err := harness.ComposeAndRun(ctx, spec, *offset)
	if err != nil {
		logger.Fatalf("backtest failed: %v", err)
	}

	results := handle.Results()
	record := harness.RunRecordFrom(resolved, results)

	// Persist result
	if *persistResult {
		if err := runStore.Insert(ctx, record); err != nil {
			logger.Fatalf("persist run record: %v", err)
		}
		err := eventStore.InsertBulk(ctx, resolved.Source.Name(), resolved.Source.Events())
		if err != nil && !errors.Is(err, storage.ErrDuplicateKey) {
			logger.Fatalf("persist trade events: %v", err)
		}
		logger.Printf("Persisted run %s (%d events)", record.RunID, resolved.Source.Len())
	}

	// Output result
	if *outputJSON {
		output, _ := json.MarshalIndent(record, "", "  ")
		fmt.Println(string(output))
	} else {
		printRunRecord(record)
	}
}

// printResolved outputs the merged configuration without executing it.
func printResolved(r *harness.Resolved) {
	fmt.Println()
	fmt.Println("=== Composed Configuration ===")
	fmt.Printf("Security ID:        %s\n", r.SecurityID)
	fmt.Printf("Amplitude:          %.2f\n", r.Amplitude)
	fmt.Printf("Base Price:         %.2f\n", r.BasePrice)
	fmt.Printf("Trade Count:        %d\n", r.TradeCount)
	fmt.Printf("Order Count:        %d\n", r.OrderCount)
	fmt.Printf("Style:              %s\n", r.SimulationStyle)
	fmt.Printf("Strategy:           %s\n", r.Algorithm.Name())
	fmt.Printf("Source:             %s (%d events)\n", r.Source.Name(), r.Source.Len())
	fmt.Printf("Period:             %s .. %s\n",
		r.Environment.FirstOpen.Format(time.RFC3339),
		r.Environment.PeriodEnd.Format(time.RFC3339))
}

// printRunRecord outputs a human-readable run summary.
func printRunRecord(r *domain.RunRecord) {
	fmt.Println()
	fmt.Println("=== Backtest Result ===")
	fmt.Printf("Run ID:             %s\n", r.RunID)
	fmt.Printf("Security ID:        %s\n", r.SecurityID)
	fmt.Printf("Strategy:           %s\n", r.StrategyName)
	fmt.Printf("Style:              %s\n", r.SimulationStyle)
	fmt.Println()

	fmt.Println("Source:")
	fmt.Printf("  Trade Count:      %d\n", r.TradeCount)
	fmt.Printf("  Event Count:      %d\n", r.EventCount)
	fmt.Printf("  Period Start:     %s\n", r.PeriodStart.Format(time.RFC3339))
	fmt.Printf("  Period End:       %s\n", r.PeriodEnd.Format(time.RFC3339))
	fmt.Println()

	fmt.Println("Execution:")
	fmt.Printf("  Order Count:      %d\n", r.OrderCount)
	fmt.Printf("  Orders Placed:    %d\n", r.OrdersPlaced)
	fmt.Printf("  Fills:            %d\n", r.FillCount)
	fmt.Println()

	fmt.Println("Result:")
	fmt.Printf("  Final Position:   %.2f\n", r.FinalPosition)
	fmt.Printf("  Cash:             %.2f\n", r.Cash)
	fmt.Printf("  PnL:              %.2f\n", r.PnL)
}
