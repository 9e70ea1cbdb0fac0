package main

import (
	"bufio"
	"fmt"
	"os"

	"grocery-pos/internal/adapters/repl"
	"grocery-pos/internal/core"
	"grocery-pos/internal/export"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const (
	defaultInventoryFile = "inventory.csv"
	defaultExportFile    = "inventory.xlsx"
)

func main() {
	_ = godotenv.Load()

	logger := newLogger()

	path := os.Getenv("GROCERY_INVENTORY_FILE")
	if path == "" {
		path = defaultInventoryFile
	}

	store := core.NewStore(logger)
	if err := store.LoadFile(path); err != nil {
		logger.Fatal().Err(err).Str("path", path).Msg("failed to load inventory")
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "items":
			repl.PrintItems(store.Items())

		case "export":
			out := defaultExportFile
			if len(os.Args) > 2 {
				out = os.Args[2]
			}
			if err := export.WriteInventory(store.Items(), out); err != nil {
				logger.Fatal().Err(err).Msg("export failed")
			}
			fmt.Printf("Inventory exported to %s\n", out)

		default:
			logger.Fatal().Msgf("Unknown command: %s (expected 'items' or 'export')", os.Args[1])
		}
		return
	}

	repl.Run(store, bufio.NewReader(os.Stdin), path, logger)
}

func newLogger() zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
