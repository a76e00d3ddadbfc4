// Command ouigen regenerates the compiled-in vendor snapshot: the IEEE MA-L entries whose OUI
// appears in an access log.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"go/format"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"wifi-analytics/internal/datasets"
	"wifi-analytics/internal/shared/loggers"
	"wifi-analytics/internal/vendors"
)

const fetchTimeout = 5 * time.Minute

func main() {
	registry := flag.String("registry", "http://standards-oui.ieee.org/oui.txt", "IEEE MA-L listing, an http(s) URL or a file path")
	dataset := flag.String("dataset", "datasets/logs-conexion.csv", "access log whose vendors are kept")
	out := flag.String("out", "snapshot_gen.go", "output Go file")
	pkg := flag.String("package", "vendors", "package name of the output file")
	flag.Parse()

	logger, err := loggers.NewWithOptions(loggers.Options{
		Level:  "info",
		Format: loggers.FormatConsole,
		Writer: os.Stderr,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(logger.WithContext(context.Background()), fetchTimeout)
	defer cancel()

	if err := run(ctx, *registry, *dataset, *out, *pkg); err != nil {
		cancel()
		logger.Fatal().Err(err).Msg("ouigen failed")
	}
}

func run(ctx context.Context, registry, dataset, out, pkg string) error {
	logger := loggers.Ctx(ctx)

	observed, err := observedOUIs(dataset)
	if err != nil {
		return fmt.Errorf("scan dataset %s: %w", dataset, err)
	}
	logger.Info().Str(loggers.FieldDatasetKey, dataset).Int(loggers.FieldVendors, len(observed)).Msg("dataset scanned")

	rc, err := openRegistry(ctx, registry)
	if err != nil {
		return fmt.Errorf("open registry %s: %w", registry, err)
	}
	defer rc.Close()
	entries, err := vendors.ParseRegistry(rc)
	if err != nil {
		return fmt.Errorf("parse registry: %w", err)
	}
	kept := vendors.FilterObserved(entries, observed)
	logger.Info().Int("registry_entries", len(entries)).Int(loggers.FieldResults, len(kept)).Msg("registry filtered")

	src, err := render(pkg, kept)
	if err != nil {
		return err
	}
	if err := os.WriteFile(out, src, 0o644); err != nil {
		return err
	}
	logger.Info().Str("out", out).Msg("snapshot written")
	return nil
}

func observedOUIs(path string) (map[vendors.OUI]struct{}, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	plain, _, err := datasets.Decompress(f)
	if err != nil {
		return nil, err
	}
	defer plain.Close()
	return vendors.ObservedOUIs(plain)
}

func openRegistry(ctx context.Context, location string) (io.ReadCloser, error) {
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		f, err := os.Open(location)
		if err != nil {
			return nil, err
		}
		plain, _, err := datasets.Decompress(f)
		return plain, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, err
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return resp.Body, nil
}

func render(pkg string, entries []vendors.Entry) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by ouigen; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	buf.WriteString("var snapshot = [...]Entry{\n")
	for _, e := range entries {
		fmt.Fprintf(&buf, "\t{0x%s, %q},\n", e.OUI, e.Vendor)
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format snapshot: %w", err)
	}
	return src, nil
}
