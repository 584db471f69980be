package model

import (
	"errors"

	"github.com/google/uuid"

	gModel "hotelpos/shared/model"
	"hotelpos/shared/timezone"
)

var (
	// ErrLinePrinted rejects reducing a line below the quantity already sent
	// to the kitchen.
	ErrLinePrinted = errors.New("quantity already sent to kitchen")

	ErrLineNotFound = errors.New("cart line not found")
)

// CartLine is one order line while it is being edited. UnitPrice and TaxRate
// are snapshots taken when the line was added: later menu edits do not touch
// an open order.
type CartLine struct {
	ItemID     string  `json:"item_id"`
	ItemName   string  `json:"item_name"`
	Quantity   int     `json:"quantity"`
	PrintedQty int     `json:"printed_qty"`
	UnitPrice  float64 `json:"unit_price"`
	TaxRate    float64 `json:"tax_rate"`
	Note       string  `json:"note"`
}

// Cart holds the lines of an order being edited plus the bill-level discount.
type Cart struct {
	Lines           []CartLine `json:"lines"`
	DiscountPercent float64    `json:"discount_percent"`
}

// Totals is the bill arithmetic for a cart. Tax is computed per line from the
// snapshotted rate; the discount applies to subtotal plus tax.
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// KOTLine is a line pending kitchen printing: only the not-yet-printed part
// of the quantity.
type KOTLine struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
	Note     string `json:"note"`
}

// Add puts an item into the cart. A line with the same name and no note is
// merged by bumping its quantity; anything else becomes a new line so that a
// noted line never absorbs further additions.
func (c *Cart) Add(itemID, itemName string, unitPrice, taxRate float64) {
	for i := range c.Lines {
		if c.Lines[i].ItemName == itemName && c.Lines[i].Note == "" {
			c.Lines[i].Quantity++

			return
		}
	}

	c.Lines = append(c.Lines, CartLine{
		ItemID:    itemID,
		ItemName:  itemName,
		Quantity:  1,
		UnitPrice: unitPrice,
		TaxRate:   taxRate,
	})
}

// ChangeQty adjusts a line's quantity by delta. Reductions stop at the
// printed quantity; a line whose quantity reaches zero is removed.
func (c *Cart) ChangeQty(index, delta int) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrLineNotFound
	}

	line := &c.Lines[index]

	if delta < 0 && line.PrintedQty > 0 && line.Quantity+delta < line.PrintedQty {
		return ErrLinePrinted
	}

	line.Quantity += delta

	if line.Quantity <= 0 {
		c.Lines = append(c.Lines[:index], c.Lines[index+1:]...)
	}

	return nil
}

// SetNote attaches a kitchen note to a line.
func (c *Cart) SetNote(index int, note string) error {
	if index < 0 || index >= len(c.Lines) {
		return ErrLineNotFound
	}

	c.Lines[index].Note = note

	return nil
}

// Totals computes the bill amounts for the current cart state.
func (c *Cart) Totals() Totals {
	var subtotal, tax float64

	for _, line := range c.Lines {
		lineAmount := line.UnitPrice * float64(line.Quantity)
		subtotal += lineAmount
		tax += lineAmount * line.TaxRate / 100
	}

	discount := (subtotal + tax) * c.DiscountPercent / 100

	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Discount: discount,
		Total:    subtotal + tax - discount,
	}
}

// UnprintedLines returns the portion of each line not yet sent to the
// kitchen. Fully printed lines are skipped.
func (c *Cart) UnprintedLines() []KOTLine {
	var lines []KOTLine

	for _, line := range c.Lines {
		toPrint := line.Quantity - line.PrintedQty
		if toPrint <= 0 {
			continue
		}

		lines = append(lines, KOTLine{
			ItemName: line.ItemName,
			Quantity: toPrint,
			Note:     line.Note,
		})
	}

	return lines
}

// MarkPrinted records that every line has been sent to the kitchen in full.
func (c *Cart) MarkPrinted() {
	for i := range c.Lines {
		c.Lines[i].PrintedQty = c.Lines[i].Quantity
	}
}

// RequestedLine is the client's view of a cart line when saving an order:
// quantities and notes only, never prices.
type RequestedLine struct {
	ItemID   string
	Quantity int
	Note     string
}

// ItemSnapshot is the price and tax captured for a line when it first enters
// the cart.
type ItemSnapshot struct {
	Name      string
	UnitPrice float64
	TaxRate   float64
}

// Reconcile replaces the cart lines with the requested state. Lines that
// match an existing line by item and note keep their price snapshot and
// printed quantity; new lines are priced through lookup. Printed quantities
// are immovable: a request that shrinks or drops a printed line fails with
// ErrLinePrinted.
func (c *Cart) Reconcile(requested []RequestedLine, lookup func(itemID string) (ItemSnapshot, error)) error {
	requested = mergeRequestedLines(requested)

	matched := make([]bool, len(c.Lines))
	newLines := make([]CartLine, 0, len(requested))

	for _, req := range requested {

		existingIdx := -1

		for i, line := range c.Lines {
			if !matched[i] && line.ItemID == req.ItemID && line.Note == req.Note {
				existingIdx = i

				break
			}
		}

		if existingIdx >= 0 {
			line := c.Lines[existingIdx]
			matched[existingIdx] = true

			if req.Quantity < line.PrintedQty {
				return ErrLinePrinted
			}

			line.Quantity = req.Quantity
			newLines = append(newLines, line)

			continue
		}

		snapshot, err := lookup(req.ItemID)
		if err != nil {
			return err
		}

		newLines = append(newLines, CartLine{
			ItemID:    req.ItemID,
			ItemName:  snapshot.Name,
			Quantity:  req.Quantity,
			UnitPrice: snapshot.UnitPrice,
			TaxRate:   snapshot.TaxRate,
			Note:      req.Note,
		})
	}

	for i, line := range c.Lines {
		if !matched[i] && line.PrintedQty > 0 {
			return ErrLinePrinted
		}
	}

	c.Lines = newLines

	return nil
}

// mergeRequestedLines collapses requested lines that repeat the same item and
// note into one line, summing quantities. Add never produces such duplicates,
// so a request carrying them is folded back to the canonical shape. Lines with
// zero or negative quantity are dropped.
func mergeRequestedLines(requested []RequestedLine) []RequestedLine {
	type lineKey struct {
		itemID string
		note   string
	}

	merged := make([]RequestedLine, 0, len(requested))
	index := make(map[lineKey]int, len(requested))

	for _, req := range requested {
		if req.Quantity <= 0 {
			continue
		}

		key := lineKey{itemID: req.ItemID, note: req.Note}

		if i, ok := index[key]; ok {
			merged[i].Quantity += req.Quantity

			continue
		}

		index[key] = len(merged)
		merged = append(merged, req)
	}

	return merged
}

// FromOrderItems rebuilds a cart from persisted order lines.
func (c *Cart) FromOrderItems(items []OrderItem, discountPercent float64) {
	c.DiscountPercent = discountPercent
	c.Lines = make([]CartLine, len(items))

	for i, item := range items {
		c.Lines[i] = CartLine{
			ItemID:     item.ItemID,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			PrintedQty: item.PrintedQty,
			UnitPrice:  item.UnitPrice,
			TaxRate:    item.TaxRate,
			Note:       item.Note,
		}
	}
}

// ToOrderItems materializes the cart lines for persistence under orderID.
func (c *Cart) ToOrderItems(orderID, user string) []OrderItem {
	items := make([]OrderItem, len(c.Lines))
	now := timezone.Now()

	for i, line := range c.Lines {
		items[i] = OrderItem{
			ID:         uuid.NewString(),
			OrderID:    orderID,
			ItemID:     line.ItemID,
			ItemName:   line.ItemName,
			Quantity:   line.Quantity,
			PrintedQty: line.PrintedQty,
			UnitPrice:  line.UnitPrice,
			TaxRate:    line.TaxRate,
			Note:       line.Note,
			TotalPrice: line.UnitPrice * float64(line.Quantity),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  user,
				ModifiedBy: user,
			},
		}
	}

	return items
}
