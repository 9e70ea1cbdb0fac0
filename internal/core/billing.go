package core

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Membership is the operator-selected discount bracket applied to the
// basket subtotal at checkout.
type Membership int

const (
	MembershipNone Membership = iota
	MembershipSilver
	MembershipGold
	MembershipPlatinum
)

func (m Membership) Name() string {
	switch m {
	case MembershipSilver:
		return "Silver"
	case MembershipGold:
		return "Gold"
	case MembershipPlatinum:
		return "Platinum"
	}
	return "None"
}

func (m Membership) DiscountPercent() decimal.Decimal {
	switch m {
	case MembershipSilver:
		return decimal.NewFromInt(5)
	case MembershipGold:
		return decimal.NewFromInt(10)
	case MembershipPlatinum:
		return decimal.NewFromInt(15)
	}
	return decimal.Zero
}

// ParseMembership maps a membership menu choice to a tier. Anything other
// than the three recognized tier choices falls back to no membership.
func ParseMembership(choice int) Membership {
	switch choice {
	case 2:
		return MembershipSilver
	case 3:
		return MembershipGold
	case 4:
		return MembershipPlatinum
	}
	return MembershipNone
}

// gstRate is applied twice (CGST and SGST) to the post-membership amount.
var gstRate = decimal.NewFromFloat(0.05)

// PurchaseLine is one basket entry. It exists only for the duration of a
// billing session and is never persisted.
type PurchaseLine struct {
	Name      string
	Quantity  int
	UnitPrice decimal.Decimal // final price per unit at purchase time
}

func (l PurchaseLine) Total() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Basket accumulates purchase lines for one billing session.
type Basket struct {
	ReceiptID string
	Lines     []PurchaseLine
	subtotal  decimal.Decimal
}

func NewBasket() *Basket {
	return &Basket{ReceiptID: uuid.New().String()}
}

// AddLine records a purchase of qty units of the item with the given id.
// Stock is decremented immediately, so a later line for the same item sees
// the already-reduced quantity. An unknown id fails with ErrNotFound and a
// quantity beyond current stock fails with InsufficientStockError; either
// way the basket and the stock are left unchanged.
func (b *Basket) AddLine(s *Store, id, qty int) (PurchaseLine, error) {
	idx, ok := s.Find(id)
	if !ok {
		return PurchaseLine{}, ErrNotFound
	}
	item := &s.items[idx]
	if err := item.ReduceStock(qty); err != nil {
		return PurchaseLine{}, err
	}
	line := PurchaseLine{Name: item.Name, Quantity: qty, UnitPrice: item.FinalPrice()}
	b.Lines = append(b.Lines, line)
	b.subtotal = b.subtotal.Add(line.Total())
	return line, nil
}

func (b *Basket) Subtotal() decimal.Decimal {
	return b.subtotal
}

// Invoice is the deterministic checkout result for one basket.
type Invoice struct {
	ReceiptID      string
	Lines          []PurchaseLine
	Membership     Membership
	Subtotal       decimal.Decimal
	MemberDiscount decimal.Decimal
	CGST           decimal.Decimal
	SGST           decimal.Decimal
	Total          decimal.Decimal
}

// Invoice computes the final bill for the basket under the given tier:
// the membership discount comes off the subtotal, then CGST and SGST
// (5% each) apply to the remainder.
func (b *Basket) Invoice(tier Membership) Invoice {
	memberAmount := b.subtotal.Mul(tier.DiscountPercent()).Div(decimal.NewFromInt(100))
	afterMember := b.subtotal.Sub(memberAmount)
	cgst := afterMember.Mul(gstRate)
	sgst := afterMember.Mul(gstRate)
	return Invoice{
		ReceiptID:      b.ReceiptID,
		Lines:          b.Lines,
		Membership:     tier,
		Subtotal:       b.subtotal,
		MemberDiscount: memberAmount,
		CGST:           cgst,
		SGST:           sgst,
		Total:          afterMember.Add(cgst).Add(sgst),
	}
}
