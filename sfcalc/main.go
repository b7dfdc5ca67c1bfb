package main

import (
	"flag"
	"log"
	"os"

	"github.com/itohio/signalforge/pkg/config"
	"gopkg.in/yaml.v3"
)

func main() {
	var (
		configFlag = flag.String("config", "config.yaml", "Configuration file path")
		archFlag   = flag.String("arch", archAll, "Architecture: all, weighted, r2r, counter or flash")
	)
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	r, err := buildReport(cfg, *archFlag)
	if err != nil {
		log.Fatalf("Failed to build report: %v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
	if err := enc.Close(); err != nil {
		log.Fatalf("Failed to write report: %v", err)
	}
}
