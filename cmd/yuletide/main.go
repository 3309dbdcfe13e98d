// Command yuletide opens the Christmas tree scene in a window.
//
// Usage:
//
//	yuletide [-config yuletide.yaml] [-debug] [-script run.json] [-screenshots dir]
//
// With -script the scene is driven by a JSON test script and the process
// exits non-zero if any expectation in it fails.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/phanxgames/yuletide"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults are used when empty)")
	debug := flag.Bool("debug", false, "log per-frame stats to stderr and show the FPS widget")
	scriptPath := flag.String("script", "", "JSON test script to drive the scene")
	screenshots := flag.String("screenshots", "", "directory for script screenshots (overrides config)")
	flag.Parse()

	cfg := yuletide.DefaultConfig()
	if *configPath != "" {
		var err error
		cfg, err = yuletide.LoadConfig(*configPath)
		if err != nil {
			log.Fatalf("[yuletide] %v", err)
		}
	}
	if *debug {
		cfg.Debug = true
	}
	if *screenshots != "" {
		cfg.ScreenshotDir = *screenshots
	}

	scene, err := yuletide.NewScene(cfg)
	if err != nil {
		log.Fatalf("[yuletide] %v", err)
	}

	if *scriptPath != "" {
		data, err := os.ReadFile(*scriptPath)
		if err != nil {
			log.Fatalf("[yuletide] read script: %v", err)
		}
		runner, err := yuletide.LoadTestScript(data)
		if err != nil {
			log.Fatalf("[yuletide] %v", err)
		}
		scene.SetTestRunner(runner)
	}

	if err := yuletide.Run(scene); err != nil {
		log.Fatalf("[yuletide] %v", err)
	}
}
