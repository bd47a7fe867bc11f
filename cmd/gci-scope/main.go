package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/rfdavies/gciscope/pkg/config"
)

var (
	// Version information (set by build flags)
	version = "dev"
	commit  = "unknown"
)

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to configuration file")
	seed := flag.Int64("seed", 0, "Random seed (0 = time-based)")
	showVersion := flag.Bool("version", false, "Show version information")
	showHelp := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *showVersion {
		fmt.Printf("gci-scope version %s (commit: %s)\n", version, commit)
		os.Exit(0)
	}

	if *showHelp {
		printHelp()
		os.Exit(0)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	app := NewApp(cfg, rng)
	if err := app.Run(); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

// printHelp prints usage information
func printHelp() {
	fmt.Println("gci-scope - WWII Ground Control Intercept radar scope for the terminal")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  gci-scope [options]")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -config string")
	fmt.Println("        Path to configuration file (default: configs/config.json)")
	fmt.Println("  -seed int")
	fmt.Println("        Random seed for aircraft placement (0 = time-based)")
	fmt.Println("  -version")
	fmt.Println("        Show version information")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println()
	fmt.Println("COMMANDS:")
	fmt.Println("  Type [CODE] [X] [Y] into the command line and press ENTER to vector")
	fmt.Println("  an aircraft to new coordinates, e.g.: SPITF 400 150")
	fmt.Println()
	fmt.Println("KEYBOARD SHORTCUTS:")
	fmt.Println("  TAB            Switch focus between scope and command line")
	fmt.Println("  f or F11       Toggle fullscreen scope (hide console)")
	fmt.Println("  ESC            Exit fullscreen")
	fmt.Println("  q or Ctrl+C    Quit")
}
