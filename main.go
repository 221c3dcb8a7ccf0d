package main

import (
	"flag"
	"log"
	"os"

	"LocalPaint/internal/config"
	"LocalPaint/internal/ui"
)

func main() {
	var (
		configPath = flag.String("config", config.DefaultFile, "path to the YAML config file")
		debug      = flag.Bool("debug", false, "log every gesture")
		open       = flag.String("open", "", "image file to load at start-up")
	)
	flag.Parse()

	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	cfg, err := config.Resolve(*configPath)
	if err != nil {
		log.Printf("[CONFIG] %v", err)
		os.Exit(1)
	}
	log.Printf("[CONFIG] canvas %dx%d, tool %s, spray every %s", cfg.Width, cfg.Height, cfg.Tool, cfg.SprayInterval)

	path := *open
	if path == "" && flag.NArg() > 0 {
		path = flag.Arg(0)
	}
	ui.RunApp(cfg, ui.Options{Debug: *debug, Open: path})
}
