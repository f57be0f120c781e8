// Package comparison groups competing supplier line items by item, keeps a
// per-item winner selection and computes the totals of a quote comparison.
package comparison

import (
	"errors"
	"sort"

	"github.com/shopspring/decimal"
)

var (
	ErrEmptySelection  = errors.New("nenhum item selecionado")
	ErrUnknownItem     = errors.New("item não cotado por este fornecedor")
	ErrUnknownLineItem = errors.New("item de cotação desconhecido")
)

// LineItem is one priced item of a supplier quote
type LineItem struct {
	ID           string          `json:"id"`
	QuoteID      string          `json:"cotacao_id"`
	ItemKey      string          `json:"item_key,omitempty"` // stable request item id, if known
	ItemName     string          `json:"item_name"`
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
}

// Key identifies the item across suppliers. Items without a stable id fall
// back to exact name equality.
func (l LineItem) Key() string {
	if l.ItemKey != "" {
		return l.ItemKey
	}
	return l.ItemName
}

// Subtotal is price × quantity
func (l LineItem) Subtotal() decimal.Decimal {
	return l.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// SupplierQuote is the set of line items one supplier priced
type SupplierQuote struct {
	SupplierID   string
	SupplierName string
	Items        []LineItem
}

// SupplierGroup is the part of a finalized selection bought from one supplier
type SupplierGroup struct {
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Items        []LineItem      `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

// Result is the record of a procurement decision
type Result struct {
	Total      decimal.Decimal `json:"total"`
	BySupplier []SupplierGroup `json:"by_supplier"`
}

// Comparison holds the quotes under comparison and the current selection.
// It is not safe for concurrent use.
type Comparison struct {
	quotes    []SupplierQuote
	itemKeys  []string
	itemNames map[string]string
	selection map[string]LineItem
}

// New builds a comparison over quotes. Line items with an empty supplier id
// inherit the one of their quote.
func New(quotes []SupplierQuote) *Comparison {
	c := &Comparison{
		itemNames: make(map[string]string),
		selection: make(map[string]LineItem),
	}
	for _, q := range quotes {
		items := make([]LineItem, len(q.Items))
		for i, it := range q.Items {
			if it.SupplierID == "" {
				it.SupplierID = q.SupplierID
			}
			if it.SupplierName == "" {
				it.SupplierName = q.SupplierName
			}
			items[i] = it

			key := it.Key()
			if _, seen := c.itemNames[key]; !seen {
				c.itemNames[key] = it.ItemName
				c.itemKeys = append(c.itemKeys, key)
			}
		}
		c.quotes = append(c.quotes, SupplierQuote{SupplierID: q.SupplierID, SupplierName: q.SupplierName, Items: items})
	}
	return c
}

// UniqueItems returns the distinct item keys in first-seen order
func (c *Comparison) UniqueItems() []string {
	out := make([]string, len(c.itemKeys))
	copy(out, c.itemKeys)
	return out
}

// ItemName returns the display name recorded for an item key
func (c *Comparison) ItemName(key string) string {
	return c.itemNames[key]
}

// Suppliers returns the quotes in input order
func (c *Comparison) Suppliers() []SupplierQuote {
	return c.quotes
}

// Cell finds the line item a supplier quoted for an item, if any
func (c *Comparison) Cell(itemKey, supplierID string) (LineItem, bool) {
	for _, q := range c.quotes {
		for _, it := range q.Items {
			if it.SupplierID == supplierID && it.Key() == itemKey {
				return it, true
			}
		}
	}
	return LineItem{}, false
}

// Select makes supplierID the winner for itemKey, replacing any earlier choice
func (c *Comparison) Select(itemKey, supplierID string) error {
	it, ok := c.Cell(itemKey, supplierID)
	if !ok {
		return ErrUnknownItem
	}
	c.selection[itemKey] = it
	return nil
}

// SelectLineItem selects a line item by its own id
func (c *Comparison) SelectLineItem(lineID string) error {
	for _, q := range c.quotes {
		for _, it := range q.Items {
			if it.ID == lineID {
				c.selection[it.Key()] = it
				return nil
			}
		}
	}
	return ErrUnknownLineItem
}

// Deselect clears the choice for itemKey
func (c *Comparison) Deselect(itemKey string) {
	delete(c.selection, itemKey)
}

// Toggle selects supplierID for itemKey, or clears the choice when that
// supplier is already the selected one. It reports the resulting state.
func (c *Comparison) Toggle(itemKey, supplierID string) (bool, error) {
	if cur, ok := c.selection[itemKey]; ok && cur.SupplierID == supplierID {
		delete(c.selection, itemKey)
		return false, nil
	}
	if err := c.Select(itemKey, supplierID); err != nil {
		return false, err
	}
	return true, nil
}

// SelectAllFrom selects every item supplierID priced, overriding existing
// choices for those items. It returns how many items were selected.
func (c *Comparison) SelectAllFrom(supplierID string) int {
	n := 0
	for _, q := range c.quotes {
		for _, it := range q.Items {
			if it.SupplierID == supplierID {
				c.selection[it.Key()] = it
				n++
			}
		}
	}
	return n
}

// Selected returns the line item chosen for itemKey
func (c *Comparison) Selected(itemKey string) (LineItem, bool) {
	it, ok := c.selection[itemKey]
	return it, ok
}

// Selection returns the chosen line items ordered like UniqueItems
func (c *Comparison) Selection() []LineItem {
	out := make([]LineItem, 0, len(c.selection))
	for _, key := range c.itemKeys {
		if it, ok := c.selection[key]; ok {
			out = append(out, it)
		}
	}
	return out
}

// SupplierTotal sums every line item of a supplier, selected or not
func (c *Comparison) SupplierTotal(supplierID string) decimal.Decimal {
	total := decimal.Zero
	for _, q := range c.quotes {
		for _, it := range q.Items {
			if it.SupplierID == supplierID {
				total = total.Add(it.Subtotal())
			}
		}
	}
	return total
}

// SelectedTotal sums the current selection only
func (c *Comparison) SelectedTotal() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.selection {
		total = total.Add(it.Subtotal())
	}
	return total
}

// BestOffer returns the cheapest unit price quoted for itemKey. Ties keep the
// first supplier in input order.
func (c *Comparison) BestOffer(itemKey string) (LineItem, bool) {
	var best LineItem
	found := false
	for _, q := range c.quotes {
		for _, it := range q.Items {
			if it.Key() != itemKey {
				continue
			}
			if !found || it.Price.LessThan(best.Price) {
				best = it
				found = true
			}
		}
	}
	return best, found
}

// Finalize computes the decision record for the current selection
func (c *Comparison) Finalize() (Result, error) {
	selected := c.Selection()
	if len(selected) == 0 {
		return Result{}, ErrEmptySelection
	}

	groups := make(map[string]*SupplierGroup)
	for _, it := range selected {
		g, ok := groups[it.SupplierID]
		if !ok {
			g = &SupplierGroup{SupplierID: it.SupplierID, SupplierName: it.SupplierName, Subtotal: decimal.Zero}
			groups[it.SupplierID] = g
		}
		g.Items = append(g.Items, it)
		g.Subtotal = g.Subtotal.Add(it.Subtotal())
	}

	res := Result{Total: decimal.Zero}
	for _, g := range groups {
		res.BySupplier = append(res.BySupplier, *g)
		res.Total = res.Total.Add(g.Subtotal)
	}
	sort.Slice(res.BySupplier, func(i, j int) bool {
		return res.BySupplier[i].SupplierName < res.BySupplier[j].SupplierName
	})

	return res, nil
}
