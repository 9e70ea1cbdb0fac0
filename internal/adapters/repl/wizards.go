package repl

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"grocery-pos/internal/core"

	"github.com/shopspring/decimal"
)

// promptInt re-prompts until the operator enters a valid integer.
func promptInt(reader *bufio.Reader, prompt string) int {
	for {
		raw := readLine(reader, prompt)
		n, err := strconv.Atoi(raw)
		if err != nil {
			fmt.Println("Invalid number, try again.")
			continue
		}
		return n
	}
}

// promptDecimal re-prompts until the operator enters a valid decimal amount.
func promptDecimal(reader *bufio.Reader, prompt string) decimal.Decimal {
	for {
		raw := readLine(reader, prompt)
		d, err := decimal.NewFromString(raw)
		if err != nil {
			fmt.Println("Invalid amount, try again.")
			continue
		}
		return d
	}
}

// addItemWizard collects the fields for a new item. Creation is aborted
// (with no partial item added) only on an unrecognized category choice.
// Reports whether an item was added.
func addItemWizard(reader *bufio.Reader, store *core.Store) bool {
	categories := core.Categories()

	fmt.Println("\nSelect Category:")
	for i, c := range categories {
		fmt.Printf("%d. %s\n", i+1, c.Label())
	}
	choice, err := readInt(reader, "Enter choice: ")
	if err != nil || choice < 1 || choice > len(categories) {
		fmt.Println("Invalid category!")
		return false
	}

	id := promptInt(reader, "Enter Item ID: ")
	name := readLine(reader, "Enter Name: ")
	price := promptDecimal(reader, "Enter Price: ")
	qty := promptInt(reader, "Enter Stock Quantity: ")

	item, err := core.NewItem(id, name, price, qty, categories[choice-1])
	if err != nil {
		fmt.Println("Invalid category!")
		return false
	}
	store.Add(item)
	fmt.Println("Item added!")
	return true
}

// editItemWizard replaces name, price, and quantity of an existing item.
// Reports whether the store was mutated.
func editItemWizard(reader *bufio.Reader, store *core.Store) bool {
	id := promptInt(reader, "Enter Item ID to Edit: ")
	if _, ok := store.Find(id); !ok {
		fmt.Println("Item not found!")
		return false
	}

	name := readLine(reader, "New Name: ")
	price := promptDecimal(reader, "New Price: ")
	qty := promptInt(reader, "New Quantity: ")

	if err := store.Edit(id, name, price, qty); err != nil {
		fmt.Println("Item not found!")
		return false
	}
	fmt.Println("Item updated!")
	return true
}

// deleteItemWizard removes the first item with the entered id.
// Reports whether the store was mutated.
func deleteItemWizard(reader *bufio.Reader, store *core.Store) bool {
	id := promptInt(reader, "Enter Item ID to delete: ")
	if err := store.Delete(id); err != nil {
		fmt.Println("Item not found!")
		return false
	}
	fmt.Println("Item deleted.")
	return true
}

// billingSession runs one basket accumulation loop followed by membership
// selection and the invoice report. A missing item or short stock rejects
// that single line and the operator is re-prompted to continue; nothing
// aborts the session. The caller persists the store afterwards regardless
// of what was purchased.
func billingSession(reader *bufio.Reader, store *core.Store) {
	basket := core.NewBasket()

	fmt.Println("\n===== START BILLING =====")
	for {
		id := promptInt(reader, "Enter Item ID: ")

		if _, ok := store.Find(id); !ok {
			fmt.Println("Item does NOT exist!")
			if !promptContinue(reader) {
				break
			}
			continue
		}

		qty := promptInt(reader, "Enter Quantity: ")
		line, err := basket.AddLine(store, id, qty)
		if err != nil {
			var stockErr *core.InsufficientStockError
			if errors.As(err, &stockErr) {
				fmt.Printf("Only %d in stock!\n", stockErr.Available)
			} else {
				fmt.Println("Item does NOT exist!")
			}
			if !promptContinue(reader) {
				break
			}
			continue
		}

		fmt.Printf("Added %d x %s (%s each)\n", line.Quantity, line.Name, core.FormatMoney(line.UnitPrice))
		if !promptContinue(reader) {
			break
		}
	}

	fmt.Println("\nMembership Options:")
	fmt.Println("1. None (0%)")
	fmt.Println("2. Silver (5%)")
	fmt.Println("3. Gold (10%)")
	fmt.Println("4. Platinum (15%)")
	choice, err := readInt(reader, "Choose: ")
	if err != nil {
		choice = 0
	}
	tier := core.ParseMembership(choice)

	printInvoice(basket.Invoice(tier))
}

func promptContinue(reader *bufio.Reader) bool {
	answer := strings.ToLower(readLine(reader, "Add another item? (y/n): "))
	return answer == "y" || answer == "yes"
}
