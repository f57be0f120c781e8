package comparison

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func fixture() *Comparison {
	return New([]SupplierQuote{
		{
			SupplierID:   "a",
			SupplierName: "Alfa Peças",
			Items: []LineItem{
				{ID: "a1", ItemName: "Peça de reposição", Quantity: 2, Price: price("120")},
				{ID: "a2", ItemName: "Parafusos", Quantity: 10, Price: price("1.50")},
			},
		},
		{
			SupplierID:   "b",
			SupplierName: "Beta Industrial",
			Items: []LineItem{
				{ID: "b1", ItemName: "Peça de reposição", Quantity: 2, Price: price("135")},
				{ID: "b2", ItemName: "Luvas", Quantity: 5, Price: price("8")},
			},
		},
	})
}

func TestUniqueItems_FirstSeenOrder(t *testing.T) {
	c := fixture()
	got := c.UniqueItems()
	want := []string{"Peça de reposição", "Parafusos", "Luvas"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestUniqueItems_PrefersStableKey(t *testing.T) {
	c := New([]SupplierQuote{
		{SupplierID: "a", Items: []LineItem{{ID: "a1", ItemKey: "item-1", ItemName: "Parafuso M6", Quantity: 1, Price: price("1")}}},
		{SupplierID: "b", Items: []LineItem{{ID: "b1", ItemKey: "item-1", ItemName: "parafuso m6", Quantity: 1, Price: price("2")}}},
	})
	if items := c.UniqueItems(); len(items) != 1 || items[0] != "item-1" {
		t.Fatalf("expected a single stable key, got %v", items)
	}
	if c.ItemName("item-1") != "Parafuso M6" {
		t.Fatalf("expected first seen name, got %q", c.ItemName("item-1"))
	}
}

func TestCell(t *testing.T) {
	c := fixture()
	it, ok := c.Cell("Parafusos", "a")
	if !ok || it.ID != "a2" {
		t.Fatalf("expected a2, got %+v %v", it, ok)
	}
	if _, ok := c.Cell("Parafusos", "b"); ok {
		t.Fatal("supplier b never quoted Parafusos")
	}
}

func TestSelect_MutuallyExclusivePerItem(t *testing.T) {
	c := fixture()
	if err := c.Select("Peça de reposição", "a"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := c.Select("Peça de reposição", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sel, ok := c.Selected("Peça de reposição")
	if !ok || sel.SupplierID != "b" {
		t.Fatalf("expected supplier b to hold the item, got %+v", sel)
	}
	if n := len(c.Selection()); n != 1 {
		t.Fatalf("expected exactly one selection, got %d", n)
	}
}

func TestSelect_UnknownCell(t *testing.T) {
	c := fixture()
	if err := c.Select("Luvas", "a"); !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if err := c.SelectLineItem("zz"); !errors.Is(err, ErrUnknownLineItem) {
		t.Fatalf("expected ErrUnknownLineItem, got %v", err)
	}
}

func TestSelectedTotal_RecomputedOnToggle(t *testing.T) {
	// Same item quoted twice under distinct keys so both can be held at once.
	c := New([]SupplierQuote{
		{SupplierID: "a", Items: []LineItem{{ID: "a1", ItemKey: "peca-a", ItemName: "Peça de reposição", Quantity: 2, Price: price("120")}}},
		{SupplierID: "b", Items: []LineItem{{ID: "b1", ItemKey: "peca-b", ItemName: "Peça de reposição", Quantity: 2, Price: price("135")}}},
	})

	if _, err := c.Toggle("peca-a", "a"); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Toggle("peca-b", "b"); err != nil {
		t.Fatal(err)
	}
	if got := c.SelectedTotal().StringFixed(2); got != "510.00" {
		t.Fatalf("expected 510.00, got %s", got)
	}

	selected, err := c.Toggle("peca-a", "a")
	if err != nil || selected {
		t.Fatalf("expected toggle to deselect, got %v %v", selected, err)
	}
	if got := c.SelectedTotal().StringFixed(2); got != "270.00" {
		t.Fatalf("expected 270.00, got %s", got)
	}
}

func TestSelectAllFrom_OverridesExisting(t *testing.T) {
	c := fixture()
	if err := c.Select("Peça de reposição", "a"); err != nil {
		t.Fatal(err)
	}

	if n := c.SelectAllFrom("b"); n != 2 {
		t.Fatalf("expected 2 items selected, got %d", n)
	}

	sel, _ := c.Selected("Peça de reposição")
	if sel.SupplierID != "b" {
		t.Fatalf("bulk selection must override, got %s", sel.SupplierID)
	}
	if got := c.SelectedTotal().StringFixed(2); got != "310.00" {
		t.Fatalf("expected 310.00 (270 + 40), got %s", got)
	}
}

func TestSupplierTotal_IgnoresSelection(t *testing.T) {
	c := fixture()
	if got := c.SupplierTotal("a").StringFixed(2); got != "255.00" {
		t.Fatalf("expected 255.00, got %s", got)
	}
	c.Deselect("Parafusos")
	if got := c.SupplierTotal("b").StringFixed(2); got != "310.00" {
		t.Fatalf("expected 310.00, got %s", got)
	}
}

func TestBestOffer(t *testing.T) {
	c := fixture()
	best, ok := c.BestOffer("Peça de reposição")
	if !ok || best.SupplierID != "a" {
		t.Fatalf("expected supplier a as best offer, got %+v", best)
	}
	if _, ok := c.BestOffer("Cimento"); ok {
		t.Fatal("no offer expected for an unquoted item")
	}
}

func TestFinalize(t *testing.T) {
	c := fixture()
	if _, err := c.Finalize(); !errors.Is(err, ErrEmptySelection) {
		t.Fatalf("expected ErrEmptySelection, got %v", err)
	}

	if err := c.SelectLineItem("a1"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectLineItem("a2"); err != nil {
		t.Fatal(err)
	}
	if err := c.SelectLineItem("b2"); err != nil {
		t.Fatal(err)
	}

	res, err := c.Finalize()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := res.Total.StringFixed(2); got != "295.00" {
		t.Fatalf("expected 295.00, got %s", got)
	}
	if !res.Total.Equal(c.SelectedTotal()) {
		t.Fatal("finalized total must equal the selected total")
	}
	if len(res.BySupplier) != 2 {
		t.Fatalf("expected two supplier groups, got %d", len(res.BySupplier))
	}
	alfa := res.BySupplier[0]
	if alfa.SupplierName != "Alfa Peças" || len(alfa.Items) != 2 || alfa.Subtotal.StringFixed(2) != "255.00" {
		t.Fatalf("unexpected group: %+v", alfa)
	}
}
