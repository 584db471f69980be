package model_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"hotelpos/internal/domains/order/model"
)

func TestCart_Add(t *testing.T) {
	cart := &model.Cart{}

	cart.Add("item-1", "Masala Chai", 40, 12)
	cart.Add("item-1", "Masala Chai", 40, 12)

	assert.Len(t, cart.Lines, 1)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, 40.0, cart.Lines[0].UnitPrice)

	cart.Add("item-2", "Samosa Plate", 80, 5)

	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
}

func TestCart_AddNotedLineStaysSeparate(t *testing.T) {
	cart := &model.Cart{}

	cart.Add("item-1", "Masala Chai", 40, 12)

	err := cart.SetNote(0, "less sugar")
	assert.NoError(t, err)

	cart.Add("item-1", "Masala Chai", 40, 12)

	assert.Len(t, cart.Lines, 2)
	assert.Equal(t, "less sugar", cart.Lines[0].Note)
	assert.Equal(t, "", cart.Lines[1].Note)
}

func TestCart_ChangeQty(t *testing.T) {
	tests := []struct {
		name      string
		cart      model.Cart
		index     int
		delta     int
		wantErr   error
		wantLines int
		wantQty   int
	}{
		{
			name: "increase quantity",
			cart: model.Cart{Lines: []model.CartLine{
				{ItemID: "item-1", ItemName: "Veg Biryani", Quantity: 1, UnitPrice: 240},
			}},
			index:     0,
			delta:     2,
			wantLines: 1,
			wantQty:   3,
		},
		{
			name: "quantity reaching zero removes the line",
			cart: model.Cart{Lines: []model.CartLine{
				{ItemID: "item-1", ItemName: "Veg Biryani", Quantity: 1, UnitPrice: 240},
			}},
			index:     0,
			delta:     -1,
			wantLines: 0,
		},
		{
			name: "reduction below printed quantity is rejected",
			cart: model.Cart{Lines: []model.CartLine{
				{ItemID: "item-1", ItemName: "Veg Biryani", Quantity: 3, PrintedQty: 2, UnitPrice: 240},
			}},
			index:     0,
			delta:     -2,
			wantErr:   model.ErrLinePrinted,
			wantLines: 1,
			wantQty:   3,
		},
		{
			name: "reduction down to printed quantity is allowed",
			cart: model.Cart{Lines: []model.CartLine{
				{ItemID: "item-1", ItemName: "Veg Biryani", Quantity: 3, PrintedQty: 2, UnitPrice: 240},
			}},
			index:     0,
			delta:     -1,
			wantLines: 1,
			wantQty:   2,
		},
		{
			name:    "index out of range",
			cart:    model.Cart{},
			index:   0,
			delta:   1,
			wantErr: model.ErrLineNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cart.ChangeQty(tt.index, tt.delta)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
			} else {
				assert.NoError(t, err)
			}

			assert.Len(t, tt.cart.Lines, tt.wantLines)

			if tt.wantLines > 0 {
				assert.Equal(t, tt.wantQty, tt.cart.Lines[0].Quantity)
			}
		})
	}
}

func TestCart_Totals(t *testing.T) {
	cart := model.Cart{
		Lines: []model.CartLine{
			{ItemName: "Butter Chicken", Quantity: 2, UnitPrice: 320, TaxRate: 5},
			{ItemName: "Masala Chai", Quantity: 1, UnitPrice: 40, TaxRate: 12},
		},
		DiscountPercent: 10,
	}

	totals := cart.Totals()

	assert.InDelta(t, 680.0, totals.Subtotal, 0.001)
	assert.InDelta(t, 36.8, totals.Tax, 0.001)
	assert.InDelta(t, 71.68, totals.Discount, 0.001)
	assert.InDelta(t, 645.12, totals.Total, 0.001)
}

func TestCart_TotalsDiscountOnGross(t *testing.T) {
	cart := model.Cart{
		Lines: []model.CartLine{
			{ItemName: "Burger", Quantity: 2, UnitPrice: 150, TaxRate: 5},
			{ItemName: "Coke", Quantity: 1, UnitPrice: 60, TaxRate: 0},
		},
		DiscountPercent: 10,
	}

	totals := cart.Totals()

	assert.InDelta(t, 360.0, totals.Subtotal, 0.001)
	assert.InDelta(t, 15.0, totals.Tax, 0.001)
	assert.InDelta(t, 37.5, totals.Discount, 0.001)
	assert.InDelta(t, 337.5, totals.Total, 0.001)
}

func TestCart_TotalsEmpty(t *testing.T) {
	cart := model.Cart{DiscountPercent: 50}

	totals := cart.Totals()

	assert.Equal(t, 0.0, totals.Subtotal)
	assert.Equal(t, 0.0, totals.Total)
}

func TestCart_UnprintedLines(t *testing.T) {
	cart := model.Cart{Lines: []model.CartLine{
		{ItemName: "Butter Chicken", Quantity: 3, PrintedQty: 1, Note: "extra spicy"},
		{ItemName: "Masala Chai", Quantity: 2, PrintedQty: 2},
		{ItemName: "Samosa Plate", Quantity: 1},
	}}

	lines := cart.UnprintedLines()

	assert.Len(t, lines, 2)
	assert.Equal(t, model.KOTLine{ItemName: "Butter Chicken", Quantity: 2, Note: "extra spicy"}, lines[0])
	assert.Equal(t, model.KOTLine{ItemName: "Samosa Plate", Quantity: 1}, lines[1])
}

func TestCart_MarkPrinted(t *testing.T) {
	cart := model.Cart{Lines: []model.CartLine{
		{ItemName: "Butter Chicken", Quantity: 3, PrintedQty: 1},
		{ItemName: "Samosa Plate", Quantity: 1},
	}}

	cart.MarkPrinted()

	assert.Empty(t, cart.UnprintedLines())

	cart.MarkPrinted()

	assert.Empty(t, cart.UnprintedLines())
	assert.Equal(t, 3, cart.Lines[0].PrintedQty)
}

func TestCart_Reconcile(t *testing.T) {
	lookup := func(itemID string) (model.ItemSnapshot, error) {
		snapshots := map[string]model.ItemSnapshot{
			"item-1": {Name: "Butter Chicken", UnitPrice: 320, TaxRate: 5},
			"item-2": {Name: "Masala Chai", UnitPrice: 40, TaxRate: 12},
		}

		snapshot, ok := snapshots[itemID]
		if !ok {
			return model.ItemSnapshot{}, errors.New("menu item not found")
		}

		return snapshot, nil
	}

	t.Run("existing line keeps its price snapshot", func(t *testing.T) {
		cart := model.Cart{Lines: []model.CartLine{
			{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 1, UnitPrice: 300, TaxRate: 5},
		}}

		err := cart.Reconcile([]model.RequestedLine{
			{ItemID: "item-1", Quantity: 3},
		}, lookup)

		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
		// The old price stays even though the menu now says 320.
		assert.Equal(t, 300.0, cart.Lines[0].UnitPrice)
	})

	t.Run("new line is priced through lookup", func(t *testing.T) {
		cart := model.Cart{}

		err := cart.Reconcile([]model.RequestedLine{
			{ItemID: "item-2", Quantity: 2, Note: "no sugar"},
		}, lookup)

		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, "Masala Chai", cart.Lines[0].ItemName)
		assert.Equal(t, 40.0, cart.Lines[0].UnitPrice)
		assert.Equal(t, "no sugar", cart.Lines[0].Note)
	})

	t.Run("unknown item fails", func(t *testing.T) {
		cart := model.Cart{}

		err := cart.Reconcile([]model.RequestedLine{
			{ItemID: "item-9", Quantity: 1},
		}, lookup)

		assert.Error(t, err)
	})

	t.Run("shrinking a printed line is rejected", func(t *testing.T) {
		cart := model.Cart{Lines: []model.CartLine{
			{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 3, PrintedQty: 3, UnitPrice: 320},
		}}

		err := cart.Reconcile([]model.RequestedLine{
			{ItemID: "item-1", Quantity: 2},
		}, lookup)

		assert.True(t, errors.Is(err, model.ErrLinePrinted))
	})

	t.Run("dropping a printed line is rejected", func(t *testing.T) {
		cart := model.Cart{Lines: []model.CartLine{
			{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 2, PrintedQty: 1, UnitPrice: 320},
		}}

		err := cart.Reconcile([]model.RequestedLine{
			{ItemID: "item-2", Quantity: 1},
		}, lookup)

		assert.True(t, errors.Is(err, model.ErrLinePrinted))
	})

	t.Run("dropping an unprinted line is fine", func(t *testing.T) {
		cart := model.Cart{Lines: []model.CartLine{
			{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 2, UnitPrice: 320},
		}}

		err := cart.Reconcile(nil, lookup)

		assert.NoError(t, err)
		assert.Empty(t, cart.Lines)
	})

	t.Run("zero quantity lines are skipped", func(t *testing.T) {
		cart := model.Cart{}

		err := cart.Reconcile([]model.RequestedLine{
			{ItemID: "item-1", Quantity: 0},
			{ItemID: "item-2", Quantity: 1},
		}, lookup)

		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, "Masala Chai", cart.Lines[0].ItemName)
	})

	t.Run("repeated item and note collapse into one line", func(t *testing.T) {
		cart := model.Cart{}

		err := cart.Reconcile([]model.RequestedLine{
			{ItemID: "item-1", Quantity: 2},
			{ItemID: "item-1", Quantity: 1},
			{ItemID: "item-1", Quantity: 1, Note: "extra spicy"},
		}, lookup)

		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 2)
		assert.Equal(t, 3, cart.Lines[0].Quantity)
		assert.Equal(t, "", cart.Lines[0].Note)
		assert.Equal(t, 1, cart.Lines[1].Quantity)
		assert.Equal(t, "extra spicy", cart.Lines[1].Note)
	})

	t.Run("repeated line matches its existing snapshot once merged", func(t *testing.T) {
		cart := model.Cart{Lines: []model.CartLine{
			{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 2, PrintedQty: 2, UnitPrice: 300, TaxRate: 5},
		}}

		err := cart.Reconcile([]model.RequestedLine{
			{ItemID: "item-1", Quantity: 1},
			{ItemID: "item-1", Quantity: 1},
		}, lookup)

		assert.NoError(t, err)
		assert.Len(t, cart.Lines, 1)
		assert.Equal(t, 2, cart.Lines[0].Quantity)
		assert.Equal(t, 2, cart.Lines[0].PrintedQty)
		assert.Equal(t, 300.0, cart.Lines[0].UnitPrice)
	})
}

func TestCart_OrderItemsRoundTrip(t *testing.T) {
	cart := model.Cart{Lines: []model.CartLine{
		{ItemID: "item-1", ItemName: "Butter Chicken", Quantity: 2, PrintedQty: 1, UnitPrice: 320, TaxRate: 5, Note: "mild"},
	}}

	items := cart.ToOrderItems("order-1", "user-1")

	assert.Len(t, items, 1)
	assert.Equal(t, "order-1", items[0].OrderID)
	assert.Equal(t, 640.0, items[0].TotalPrice)
	assert.NotEmpty(t, items[0].ID)

	rebuilt := &model.Cart{}
	rebuilt.FromOrderItems(items, 5)

	assert.Equal(t, cart.Lines, rebuilt.Lines)
	assert.Equal(t, 5.0, rebuilt.DiscountPercent)
}
