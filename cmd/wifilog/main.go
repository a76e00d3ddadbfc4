package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"wifi-analytics/internal/app"
	"wifi-analytics/internal/reports"
	"wifi-analytics/internal/shared/configs"
	"wifi-analytics/internal/shared/loggers"
)

func main() {
	configPath := flag.String("config", "./configs/configs.yml", "path to the YAML config file")
	accessPointID := flag.String("ap", "40A6E8:6C:5B:05", "access point of the unique clients query")
	since := flag.String("since", "1607173201", "reference unix timestamp of the unique clients query")
	deviceID := flag.String("device", "4C3C16:46:65:62", "device of the building changes query")
	limit := flag.String("limit", "", "number of vendors in the ranking, empty for the default")
	flag.Parse()

	cfg, err := configs.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// stdout carries the report
	appLogger, err := app.NewLogger(cfg.Log, os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	appLogger = appLogger.With().Str(loggers.FieldComponent, "cli").Logger()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = appLogger.WithContext(ctx)

	services, err := app.NewServices(ctx, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize services: %v\n", err)
		os.Exit(1)
	}
	defer services.Close()

	result, err := services.ReportService.Run(ctx, reports.ReportRequest{
		AccessPointID: *accessPointID,
		Since:         *since,
		DeviceID:      *deviceID,
		TopLimit:      *limit,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Report failed: %v\n", err)
		stop()
		services.Close()
		os.Exit(1)
	}

	printResult(result, *accessPointID, *deviceID)
}

func printResult(result *reports.ReportResult, accessPointID, deviceID string) {
	fmt.Printf("Run %s\n\n", result.RunID)

	fmt.Println("Top vendors")
	for _, vc := range result.TopVendors {
		fmt.Printf("%-40s %6d\n", vc.Vendor, vc.Count)
	}

	fmt.Println("\nDates")
	for _, date := range result.Dates {
		fmt.Println(date)
	}

	fmt.Printf("\nUnique clients of %s\n", accessPointID)
	for _, client := range result.UniqueClients {
		fmt.Println(client)
	}

	fmt.Printf("\nBuilding changes of %s\n", deviceID)
	for _, change := range result.BuildingChanges {
		fmt.Println(change)
	}

	names := make([]string, 0, len(result.Artifacts))
	for name := range result.Artifacts {
		names = append(names, name)
	}
	sort.Strings(names)
	fmt.Println("\nArtifacts")
	for _, name := range names {
		fmt.Printf("%-24s %s\n", name, result.Artifacts[name])
	}
}
