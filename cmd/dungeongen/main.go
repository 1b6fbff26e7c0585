package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/aldenfall/dungeonkernel/pkg/artifact"
	"github.com/aldenfall/dungeonkernel/pkg/dungeon"
	"github.com/aldenfall/dungeonkernel/pkg/validate"
)

const version = "1.0.0"

var (
	configPath = flag.String("config", "", "Path to YAML configuration file; if empty, uses a built-in default config")
	width      = flag.Int("width", 60, "Grid width (ignored if -config is set)")
	height     = flag.Int("height", 40, "Grid height (ignored if -config is set)")
	algorithm  = flag.String("algorithm", "cellular", "Strategy: cellular or bsp (ignored if -config is set)")
	seedFlag   = flag.Uint64("seed", 0, "Primary seed (0 = derive one from the current time)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
	versionF   = flag.Bool("version", false, "Print version and exit")
	help       = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("dungeongen version %s\n", version)
		return
	}
	if *help {
		printHelp()
		return
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	cfg, err := loadOrBuildConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	primary := uint32(*seedFlag)
	if primary == 0 {
		primary = uint32(time.Now().UnixNano())
	}

	if *verbose {
		fmt.Printf("Generating a %dx%d dungeon (algorithm=%s, primary seed=%d)\n",
			cfg.Width, cfg.Height, cfg.Algorithm, primary)
	}

	start := time.Now()
	d, err := generate(ctx, cfg, primary)
	if err != nil {
		return fmt.Errorf("generation failed: %w", err)
	}
	elapsed := time.Since(start)

	result, err := validate.Validate(d)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Printf("Generated dungeon: %dx%d, %d rooms, %d connections, %d spawns (checksum %s) in %v\n",
		d.Width, d.Height, len(d.Rooms), len(d.Connections), len(d.Spawns), d.Checksum, elapsed)
	fmt.Printf("Validation: %s\n", validationStatus(result.Success))
	for _, v := range result.Violations {
		fmt.Printf("  [%s] %s: %s\n", v.Severity, v.Type, v.Message)
	}
	if !result.Success {
		os.Exit(1)
	}
	return nil
}

func generate(ctx context.Context, cfg *dungeon.DungeonConfig, primary uint32) (*artifact.Dungeon, error) {
	if !*verbose {
		return dungeon.Generate(ctx, cfg, primary)
	}
	return dungeon.GenerateProgress(ctx, cfg, primary, func(percent int) {
		fmt.Printf("  %3d%%\n", percent)
	})
}

func loadOrBuildConfig() (*dungeon.DungeonConfig, error) {
	if *configPath != "" {
		return dungeon.LoadConfig(*configPath)
	}
	cfg := dungeon.DefaultDungeonConfig(*width, *height)
	if *algorithm == string(dungeon.AlgorithmBSP) {
		cfg.Algorithm = dungeon.AlgorithmBSP
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validationStatus(passed bool) string {
	if passed {
		return "PASSED"
	}
	return "FAILED"
}

func printHelp() {
	fmt.Printf("dungeongen version %s\n\n", version)
	fmt.Println("A command-line tool for generating procedural dungeons.")
	fmt.Println("\nUsage:")
	fmt.Println("  dungeongen [options]")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -config string")
	fmt.Println("        Path to YAML configuration file (default: built-in)")
	fmt.Println("  -width, -height int")
	fmt.Println("        Grid dimensions when -config is not set (default: 60x40)")
	fmt.Println("  -algorithm string")
	fmt.Println("        cellular or bsp, when -config is not set (default: cellular)")
	fmt.Println("  -seed uint")
	fmt.Println("        Primary seed (default: derived from the current time)")
	fmt.Println("  -verbose")
	fmt.Println("        Print per-pass progress")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  dungeongen -width 80 -height 50 -algorithm bsp -seed 12345")
	fmt.Println("  dungeongen -config dungeon.yaml -verbose")
}
