package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"github.com/ironsheep/floor-tools-mcp/internal/config"
	"github.com/ironsheep/floor-tools-mcp/internal/logging"
	"github.com/ironsheep/floor-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Handle --version and -v flags
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("floor-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			fmt.Println("floor-tools-mcp - MCP server for rectilinear floor plan analysis")
			fmt.Println()
			fmt.Println("Usage: floor-tools-mcp [options]")
			fmt.Println()
			fmt.Println("Options:")
			fmt.Println("  --version, -v    Print version information")
			fmt.Println("  --help, -h       Print this help message")
			fmt.Println()
			fmt.Println("Environment variables (also read from ./.env):")
			fmt.Println("  FLOOR_MCP_LOG_LEVEL=info          debug, info, warn or error")
			fmt.Println("  FLOOR_MCP_LOG_TO_FILE=false       Also write logs to a rotated file")
			fmt.Println("  FLOOR_MCP_LOG_DIR=./logs          Directory for log files")
			fmt.Println("  FLOOR_MCP_LOG_FILE=floor-mcp      Log file name without extension")
			fmt.Println("  FLOOR_MCP_LOG_FORMATTED=true      Human-readable file lines instead of JSON")
			fmt.Println("  FLOOR_MCP_LOG_MAX_SIZE=10         Megabytes before a log file is rotated")
			fmt.Println("  FLOOR_MCP_LOG_MAX_FILES=5         Rotated log files to keep")
			fmt.Println("  FLOOR_MCP_WORKERS=0               Search goroutines, 0 for one per CPU")
			fmt.Println("  FLOOR_MCP_FLOOD_MAX_CELLS=4000000 Largest grid a flood fill may allocate")
			fmt.Println("  FLOOR_MCP_RENDER_MAX_DIM=512      Default longest side of rendered images")
			fmt.Println()
			fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
			fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
			return
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Logs go to stderr (stdout is for MCP protocol)
	closer, err := logging.Init(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging error: %v\n", err)
		os.Exit(1)
	}
	defer closer.Close()

	server.Version = Version
	log.Info().
		Str("version", Version).
		Str("build_time", BuildTime).
		Str("commit", GitCommit).
		Int("workers", cfg.Workers).
		Msg("floor-tools-mcp starting")

	srv := server.NewWithConfig(*cfg, logging.Get())
	if err := srv.Run(); err != nil {
		log.Error().Err(err).Msg("server error")
		closer.Close()
		os.Exit(1)
	}
}
