package repl

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"grocery-pos/internal/core"

	"github.com/rs/zerolog"
)

// Run starts the interactive menu loop. Every mutating choice (add, edit,
// delete, billing) persists the store to path before the menu is shown
// again; a billing session saves unconditionally, even when nothing was
// purchased.
func Run(store *core.Store, reader *bufio.Reader, path string, logger zerolog.Logger) {
	for {
		fmt.Println("\n====== GROCERY MANAGEMENT SYSTEM ======")
		fmt.Println("1. Add Item")
		fmt.Println("2. View Items")
		fmt.Println("3. Edit Item")
		fmt.Println("4. Delete Item")
		fmt.Println("5. Billing")
		fmt.Println("6. Exit")

		choice, err := readInt(reader, "Choose: ")
		if err != nil {
			fmt.Println("Invalid choice!")
			continue
		}

		switch choice {
		case 1:
			if addItemWizard(reader, store) {
				saveStore(store, path, logger)
			}
		case 2:
			PrintItems(store.Items())
		case 3:
			if editItemWizard(reader, store) {
				saveStore(store, path, logger)
			}
		case 4:
			if deleteItemWizard(reader, store) {
				saveStore(store, path, logger)
			}
		case 5:
			billingSession(reader, store)
			saveStore(store, path, logger)
		case 6:
			fmt.Println("Exiting...")
			return
		default:
			fmt.Println("Invalid choice!")
		}
	}
}

func saveStore(store *core.Store, path string, logger zerolog.Logger) {
	if err := store.SaveFile(path); err != nil {
		logger.Error().Err(err).Str("path", path).Msg("failed to save inventory")
		fmt.Printf("Error saving inventory: %v\n", err)
	}
}

// readInt reads one line and parses it as an integer.
func readInt(reader *bufio.Reader, prompt string) (int, error) {
	fmt.Print(prompt)
	raw, _ := reader.ReadString('\n')
	return strconv.Atoi(strings.TrimSpace(raw))
}

func readLine(reader *bufio.Reader, prompt string) string {
	fmt.Print(prompt)
	raw, _ := reader.ReadString('\n')
	return strings.TrimSpace(raw)
}
