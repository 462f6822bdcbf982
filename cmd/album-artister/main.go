package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MayaGeva/AlbumArtister/internal/config"
	"github.com/MayaGeva/AlbumArtister/internal/report"
	"github.com/MayaGeva/AlbumArtister/internal/scan"
	"github.com/MayaGeva/AlbumArtister/internal/tagfix"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	ext := flag.String("ext", strings.Join(cfg.Extensions, ","),
		"Comma-separated audio file extensions to scan")

	reportDir := flag.String("report", cfg.ReportDir,
		"Directory to write the JSON run summary (empty = no report)")

	verbose := flag.Bool("v", false, "Verbose output")
	flag.BoolVar(verbose, "verbose", false, "Verbose output")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <music-dir>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Set the album artist tag on songs missing it,\n")
		fmt.Fprintf(os.Stderr, "copying the value of the artist tag.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}

	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	root := flag.Arg(0)
	if info, err := os.Stat(root); err != nil || !info.IsDir() {
		fmt.Fprintf(os.Stderr, "Error: music directory not found: %s\n", root)
		os.Exit(1)
	}

	exts := parseExtList(*ext)
	if len(exts) == 0 {
		fmt.Fprintln(os.Stderr, "Error: no extensions to scan")
		os.Exit(1)
	}

	fmt.Println("album-artister - set missing album artist tags")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Printf("Scanning: %s (%s)\n\n", root, strings.Join(exts, ", "))

	scanned, err := scan.Dir(root, scan.ExtFilter(exts))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, w := range scanned.Warnings {
		fmt.Fprintf(os.Stderr, "Warning: %s\n", w)
	}
	if *verbose {
		for _, p := range scanned.Paths {
			fmt.Println(p)
		}
	}

	outcome := tagfix.New().Run(scanned.Paths)

	if *reportDir != "" {
		path := filepath.Join(*reportDir, report.Filename(root))
		summary := report.Build(root, scanned, outcome)
		if err := summary.WriteJSON(path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to write report: %v\n", err)
		} else {
			fmt.Printf("\nReport saved to: %s\n", path)
		}
	}

	// Load-time skips keep exit 0; unsaved fixes do not.
	if len(outcome.Failed) > 0 {
		os.Exit(1)
	}
}

// parseExtList splits a comma-separated extension list, trims whitespace,
// and normalizes each entry's leading dot.
func parseExtList(s string) []string {
	var exts []string
	for _, e := range strings.Split(s, ",") {
		e = strings.TrimSpace(e)
		if e == "" {
			continue
		}
		exts = append(exts, scan.NormalizeExt(e))
	}
	return exts
}
