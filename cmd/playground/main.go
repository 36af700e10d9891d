package main

import (
	"fmt"
	"log"
	"os"

	"github.com/playsql/playground/internal/query"
	"github.com/playsql/playground/internal/server"
	"github.com/playsql/playground/internal/version"
)

const (
	usageText = `PlaySQL - Ephemeral SQL Query Playground

Usage:
  playground <command> [options]

Commands:
  serve      Start the HTTP server
  version    Print version information
  help       Display this help message

Examples:
  playground serve         Start server on 127.0.0.1:8080
  playground version       Show version and build info
  playground help          Show this help
`
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "serve":
		if err := runServe(); err != nil {
			log.Printf("[FATAL] %v", err)
			os.Exit(1)
		}
	case "version":
		printVersion()
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServe() error {
	log.Printf("[INFO] Starting PlaySQL %s", version.Get().Short())

	executor := query.NewExecutor()

	httpServer := server.NewServer(executor)

	log.Printf("[INFO] Starting HTTP server...")
	if err := httpServer.Start(); err != nil {
		return fmt.Errorf("failed to start HTTP server: %w", err)
	}
	defer func() {
		if err := httpServer.Stop(); err != nil {
			log.Printf("[ERROR] Failed to stop HTTP server: %v", err)
		}
	}()

	log.Printf("[INFO] PlaySQL ready")
	log.Printf("[INFO] HTTP API: http://%s", httpServer.Addr())
	log.Printf("[INFO] Press Ctrl+C to stop")

	httpServer.WaitForShutdown()

	log.Printf("[INFO] Shutdown complete")
	return nil
}

func printVersion() {
	info := version.Get()
	fmt.Println(info.Full())
}

func printUsage() {
	fmt.Print(usageText)
}
