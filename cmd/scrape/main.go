package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/berfenger/enpal2mqtt/pkg/enpal"
)

// One-shot scrape of an inverter page, for cabling checks and picking rows
// before configuring the bridge.
func main() {
	host := flag.String("host", "", "inverter host (ip or hostname, optional :port)")
	flag.Parse()

	if *host == "" {
		fmt.Fprintln(os.Stderr, "usage: scrape -host <inverter host>")
		os.Exit(2)
	}

	reader := enpal.NewHTTPDeviceReader(*host)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	html, err := reader.FetchRaw(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "fetch failed: %v\n", err)
		os.Exit(1)
	}

	snapshot, err := enpal.Extract(html)
	if err != nil {
		fmt.Fprintf(os.Stderr, "decode failed: %v\n", err)
		os.Exit(1)
	}

	names := make([]string, 0, len(snapshot))
	for name := range snapshot {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		reading := snapshot[name]
		fmt.Printf("%-40s : %v %s\n", name, reading.Value, reading.Unit)
	}
}
