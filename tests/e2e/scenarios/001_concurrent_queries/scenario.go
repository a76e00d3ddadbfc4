package main

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"
)

// ### Start - fixed configs (no change)
// These values define deterministic dataset generation and must match expected results.
// DO NOT MODIFY: Changing these will break the test's deterministic behavior.
const (
	rowsPerDevice = 500
	baseTimestamp = int64(1607040000) // 2020-12-04 00:00:00 UTC
	windowSeconds = int64(10800)
)

var (
	// OUIs present in the compiled-in vendor snapshot, with their device counts.
	vendorOUIs   = []string{"4C3C16", "000502", "000AD9", "000BE1"}
	vendorNames  = []string{"Samsung Electronics Co.,Ltd", "Apple, Inc.", "Sony Mobile Communications Inc", "Nokia NET Product Operations"}
	vendorCounts = []int{16, 12, 8, 4}
	accessPoints = []string{"40A6E8:6C:5B:00", "40A6E8:6C:5B:01", "40A6E8:6C:5B:02", "40A6E8:6C:5B:03"}
	buildings    = []string{"10A", "11A", "12B", "13C"}
)

// ### End - fixed configs

type row struct {
	timestamp int64
	device    string
	ap        int
	bytes     uint64
	upload    bool
}

type vendorCount struct {
	Vendor string `json:"vendor"`
	Count  uint32 `json:"count"`
}

type expectations struct {
	topVendors      []vendorCount
	byteTotals      map[string]map[string]map[string]uint64
	uniqueClients   []string
	buildingChanges []string
}

// main runs the e2e scenario: 001_concurrent_queries
//
// This scenario writes a deterministic access log and access-point registry into the file storage
// directory of a running wifi-analytics server, then fires the four queries concurrently and
// compares every response with results computed locally from the same rows.
//
// What it tests:
//   - GET /vendors/top ranking and tie order
//   - GET /traffic/bytes parallel fold under concurrent requests (partial cubes must never leak
//     between requests)
//   - GET /access-points/{apID}/clients window semantics
//   - GET /devices/{deviceID}/building-changes transitions
//   - POST /reports artifact creation
//
// Expected results:
//   - Every response matches the locally computed expectation
//   - The report run lists six artifacts
func main() {
	// these configs can be changed to run the scenario
	baseURL := getEnv("E2E_BASE_URL", "http://localhost:8080") // Base URL of the wifi-analytics API server
	fileStorageDir := getEnv("E2E_FILE_STORAGE_DIR", "data")   // Must match file_storage.root_dir of the server
	requests := getEnvInt("E2E_REQUESTS", 64)                  // Number of query requests to send
	parallel := getEnvInt("E2E_PARALLEL", 8)                   // Number of concurrent requests
	since := baseTimestamp + 3600                              // Reference timestamp of the clients query

	projectRoot, err := findProjectRoot()
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
	storagePath := filepath.Join(projectRoot, fileStorageDir)

	fmt.Println("Starting e2e scenario: 001_concurrent_queries")
	fmt.Printf("BASE_URL: %s\n", baseURL)
	fmt.Printf("FILE_STORAGE_PATH: %s\n", storagePath)
	fmt.Printf("REQUESTS: %d\n", requests)
	fmt.Printf("PARALLEL: %d\n", parallel)
	fmt.Println()

	rows := generateRows()
	if err := writeDataset(storagePath, rows); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to write dataset: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d rows\n", len(rows))

	device := vendorOUIs[0] + ":00:00:00"
	expected := computeExpectations(rows, accessPoints[0], since, device)

	queries := []struct {
		name   string
		path   string
		target any
		want   any
	}{
		{"top_vendors", "/vendors/top", &[]vendorCount{}, &expected.topVendors},
		{"byte_totals", "/traffic/bytes", &map[string]map[string]map[string]uint64{}, &expected.byteTotals},
		{"unique_clients", fmt.Sprintf("/access-points/%s/clients?since=%d", accessPoints[0], since), &[]string{}, &expected.uniqueClients},
		{"building_changes", fmt.Sprintf("/devices/%s/building-changes", device), &[]string{}, &expected.buildingChanges},
	}

	client := &http.Client{Timeout: 60 * time.Second}
	workerChan := make(chan struct{}, parallel)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var errors []error
	var okRequests int64

	for i := 0; i < requests; i++ {
		wg.Add(1)
		workerChan <- struct{}{} // Acquire worker slot

		go func(i int) {
			defer wg.Done()
			defer func() { <-workerChan }() // Release worker slot

			q := queries[i%len(queries)]
			target := reflect.New(reflect.TypeOf(q.target).Elem()).Interface()
			err := getJSON(client, baseURL+q.path, target)
			if err == nil && !reflect.DeepEqual(reflect.ValueOf(target).Elem().Interface(), reflect.ValueOf(q.want).Elem().Interface()) {
				err = fmt.Errorf("unexpected response")
			}
			if err != nil {
				mu.Lock()
				errors = append(errors, fmt.Errorf("request %d (%s): %w", i, q.name, err))
				mu.Unlock()
				return
			}
			atomic.AddInt64(&okRequests, 1)
		}(i)
	}
	wg.Wait()

	if len(errors) > 0 {
		for _, err := range errors {
			fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		}
		os.Exit(1)
	}

	artifacts, err := createReport(client, baseURL, accessPoints[0], since, device)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: report failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println("=== Statistics ===")
	fmt.Printf("Successful requests: %d\n", atomic.LoadInt64(&okRequests))
	fmt.Printf("Report artifacts: %d\n", artifacts)
	fmt.Println("Scenario completed successfully")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// findProjectRoot walks up from the working directory until it finds go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("could not find go.mod, run from the project root")
		}
		dir = parent
	}
}

func generateRows() []row {
	var rows []row
	deviceIndex := 0
	for v, oui := range vendorOUIs {
		for n := 0; n < vendorCounts[v]; n++ {
			device := fmt.Sprintf("%s:00:00:%02X", oui, n)
			for k := 0; k < rowsPerDevice; k++ {
				rows = append(rows, row{
					timestamp: baseTimestamp + int64(k)*517 + int64(deviceIndex)*11,
					device:    device,
					ap:        (deviceIndex + k/50) % len(accessPoints),
					bytes:     uint64((k*7919 + deviceIndex*13) % 1000000),
					upload:    (k+deviceIndex)%3 == 0,
				})
			}
			deviceIndex++
		}
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].timestamp < rows[j].timestamp })
	return rows
}

func writeDataset(storagePath string, rows []row) error {
	var log strings.Builder
	log.WriteString("timestamp  device_id       ap_id           bytes  direction\n")
	for _, r := range rows {
		direction := "download"
		if r.upload {
			direction = "upload"
		}
		fmt.Fprintf(&log, "%010d %-15s %-15s %06d %s\n", r.timestamp, r.device, accessPoints[r.ap], r.bytes, direction)
	}

	var aps strings.Builder
	aps.WriteString("ap_id           building\n")
	for i, ap := range accessPoints {
		fmt.Fprintf(&aps, "%-15s %s\n", ap, buildings[i])
	}

	dir := filepath.Join(storagePath, "datasets")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, "logs-conexion.csv"), []byte(log.String()), 0o644); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, "aps.csv"), []byte(aps.String()), 0o644)
}

func computeExpectations(rows []row, ap string, since int64, device string) expectations {
	exp := expectations{byteTotals: map[string]map[string]map[string]uint64{}}

	for i, name := range vendorNames {
		exp.topVendors = append(exp.topVendors, vendorCount{Vendor: name, Count: uint32(vendorCounts[i])})
	}

	seen := map[string]bool{}
	exp.uniqueClients = []string{}
	exp.buildingChanges = []string{}
	previous := ""
	for _, r := range rows {
		date := time.Unix(r.timestamp, 0).UTC().Format("2006-01-02")
		direction := "sent"
		if r.upload {
			direction = "received"
		}
		if exp.byteTotals[date] == nil {
			exp.byteTotals[date] = map[string]map[string]uint64{}
		}
		if exp.byteTotals[date][accessPoints[r.ap]] == nil {
			exp.byteTotals[date][accessPoints[r.ap]] = map[string]uint64{}
		}
		exp.byteTotals[date][accessPoints[r.ap]][direction] += r.bytes

		if accessPoints[r.ap] == ap && r.upload && !seen[r.device] {
			seen[r.device] = true
			if r.timestamp >= since && r.timestamp <= since+windowSeconds {
				exp.uniqueClients = append(exp.uniqueClients, r.device)
			}
		}

		if r.device == device && buildings[r.ap] != previous {
			previous = buildings[r.ap]
			exp.buildingChanges = append(exp.buildingChanges, time.Unix(r.timestamp, 0).UTC().Format("2006-Jan-02 15:04:05"))
		}
	}
	return exp
}

func getJSON(client *http.Client, url string, target any) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}
	return json.NewDecoder(resp.Body).Decode(target)
}

func createReport(client *http.Client, baseURL, ap string, since int64, device string) (int, error) {
	url := fmt.Sprintf("%s/reports?ap=%s&since=%d&device=%s", baseURL, ap, since, device)
	resp, err := client.Post(url, "application/json", nil)
	if err != nil {
		return 0, fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		body, _ := io.ReadAll(resp.Body)
		return 0, fmt.Errorf("HTTP %d: %s", resp.StatusCode, body)
	}
	var result struct {
		RunID     string            `json:"run_id"`
		Artifacts map[string]string `json:"artifacts"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}
	if len(result.Artifacts) != 6 {
		return 0, fmt.Errorf("run %s stored %d artifacts, want 6", result.RunID, len(result.Artifacts))
	}
	return len(result.Artifacts), nil
}
