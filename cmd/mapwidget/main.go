// Package main starts the interactive district map widget in the browser.
//
// Build with GOOS=js GOARCH=wasm and load the binary next to the map page;
// the widget binds to the page's district shapes and info panel.
package main

import (
	"context"
	"flag"
	"log"
	"os"

	mapwidgetcmd "github.com/louisbranch/citymap/internal/cmd/mapwidget"
	"github.com/louisbranch/citymap/internal/platform/config"
)

func main() {
	cfg, err := mapwidgetcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("parse config: %v", err)
	}
	log.SetPrefix("[MAPWIDGET] ")

	if err := mapwidgetcmd.Run(context.Background(), cfg); err != nil {
		log.Fatalf("map widget stopped: %v", err)
	}
}
