package repl

import (
	"fmt"
	"strings"

	"grocery-pos/internal/core"
)

// PrintItems renders the full catalog table in sequence order.
func PrintItems(items []core.Item) {
	if len(items) == 0 {
		fmt.Println("No items in store.")
		return
	}

	fmt.Println("\n================ ITEMS IN STORE ================")
	fmt.Printf("%5s %20s %20s %12s %10s %12s %10s\n",
		"ID", "NAME", "CATEGORY", "PRICE", "DISC", "FINAL", "QTY")
	for _, it := range items {
		fmt.Printf("%5d %20s %20s %12s %9s%% %12s %10d\n",
			it.ID,
			it.Name,
			it.Category.Label(),
			core.FormatMoney(it.Price),
			it.Category.DiscountPercent().String(),
			core.FormatMoney(it.FinalPrice()),
			it.Quantity,
		)
	}
}

// printInvoice renders the line-item report followed by the summary block.
// The membership discount renders as a bare negative amount.
func printInvoice(inv core.Invoice) {
	fmt.Println("\n=========== FINAL INVOICE ===========")
	fmt.Printf("Receipt: %s\n", inv.ReceiptID)
	fmt.Printf("%-30s %-10s %-12s %-12s\n", "Item", "Qty", "Price", "Total")

	for _, l := range inv.Lines {
		fmt.Printf("%-30s %-10d %-12s %-12s\n",
			l.Name, l.Quantity, core.FormatMoney(l.UnitPrice), core.FormatMoney(l.Total()))
	}

	memberLabel := fmt.Sprintf("Membership Discount (%s%%):", inv.Membership.DiscountPercent().String())
	fmt.Printf("%-30s %12s\n", "Subtotal:", core.FormatMoney(inv.Subtotal))
	fmt.Printf("%-30s %12s\n", memberLabel, "-"+inv.MemberDiscount.StringFixed(2))
	fmt.Printf("%-30s %12s\n", "CGST (5%):", core.FormatMoney(inv.CGST))
	fmt.Printf("%-30s %12s\n", "SGST (5%):", core.FormatMoney(inv.SGST))
	fmt.Printf("%-30s %12s\n", "TOTAL PAYABLE:", core.FormatMoney(inv.Total))
	fmt.Println(strings.Repeat("=", 38))
}
