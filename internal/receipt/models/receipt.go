// Package models holds the receipt aggregate and the tolerant field parsing
// that turns loosely-formatted wire input into canonical values. Parsing is
// symmetric: the same canonical forms the marshalers emit are accepted back
// on the way in.
package models

import "encoding/json"

// Receipt is a validated record of a purchase, immutable once accepted and
// stored. The retailer is an opaque label; no field carries retailer
// identity beyond it.
type Receipt struct {
	Retailer     string    `json:"retailer"`
	PurchaseDate Date      `json:"purchaseDate"`
	PurchaseTime TimeOfDay `json:"purchaseTime"`
	Items        []Item    `json:"items"`
	Total        Money     `json:"total"`
}

// Item is a single line entry on a receipt. It has no identity of its own;
// order matters only for deterministic validation messages.
type Item struct {
	ShortDescription string `json:"shortDescription"`
	Price            Money  `json:"price"`
}

// UnmarshalJSON decodes the wire shape field by field so that every format
// failure names the offending field instead of a byte offset.
func (r *Receipt) UnmarshalJSON(data []byte) error {
	var raw struct {
		Retailer     string          `json:"retailer"`
		PurchaseDate json.RawMessage `json:"purchaseDate"`
		PurchaseTime json.RawMessage `json:"purchaseTime"`
		Items        []Item          `json:"items"`
		Total        json.RawMessage `json:"total"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	r.Retailer = raw.Retailer
	r.Items = raw.Items

	if raw.PurchaseDate != nil {
		d, err := dateFromJSON("purchaseDate", raw.PurchaseDate)
		if err != nil {
			return err
		}
		r.PurchaseDate = d
	}
	if raw.PurchaseTime != nil {
		t, err := timeFromJSON("purchaseTime", raw.PurchaseTime)
		if err != nil {
			return err
		}
		r.PurchaseTime = t
	}
	if raw.Total != nil {
		m, err := ParseMoney("total", raw.Total)
		if err != nil {
			return err
		}
		r.Total = m
	}
	return nil
}

// UnmarshalJSON mirrors Receipt.UnmarshalJSON for item fields.
func (it *Item) UnmarshalJSON(data []byte) error {
	var raw struct {
		ShortDescription string          `json:"shortDescription"`
		Price            json.RawMessage `json:"price"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	it.ShortDescription = raw.ShortDescription
	if raw.Price != nil {
		m, err := ParseMoney("price", raw.Price)
		if err != nil {
			return err
		}
		it.Price = m
	}
	return nil
}
