package addon

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownAddOn    = errors.New("unknown add-on")
	ErrInvalidQuantity = errors.New("add-on quantity must be between 1 and 20")
	ErrDuplicateAddOn  = errors.New("add-on selected more than once")
)

const maxQuantity = 20

// Period says whether the price repeats per night.
type Period string

const (
	PerStay  Period = "per_stay"
	PerNight Period = "per_night"
)

// Scope says what one unit of the price covers.
type Scope string

const (
	PerBooking Scope = "per_booking"
	PerRoom    Scope = "per_room"
	PerGuest   Scope = "per_guest"
)

type AddOn struct {
	Code   string
	Price  decimal.Decimal
	Period Period
	Scope  Scope
}

// Multiplier is how many times Price applies for one selected unit.
func (a AddOn) Multiplier(nights, rooms, guests int) int64 {
	m := int64(1)
	if a.Period == PerNight {
		m *= int64(nights)
	}
	switch a.Scope {
	case PerRoom:
		m *= int64(rooms)
	case PerGuest:
		m *= int64(guests)
	}
	return m
}

func (a AddOn) Total(quantity, nights, rooms, guests int) decimal.Decimal {
	return a.Price.Mul(decimal.NewFromInt(int64(quantity) * a.Multiplier(nights, rooms, guests)))
}

type Catalog struct {
	items map[string]AddOn
	order []string
}

func NewCatalog(items ...AddOn) *Catalog {
	c := &Catalog{items: make(map[string]AddOn, len(items))}
	for _, it := range items {
		if _, exists := c.items[it.Code]; !exists {
			c.order = append(c.order, it.Code)
		}
		c.items[it.Code] = it
	}
	return c
}

// DefaultCatalog lists the extras sold at checkout, priced in MNT.
func DefaultCatalog() *Catalog {
	return NewCatalog(
		AddOn{Code: "breakfast", Price: decimal.NewFromInt(35000), Period: PerNight, Scope: PerGuest},
		AddOn{Code: "airport_transfer", Price: decimal.NewFromInt(250000), Period: PerStay, Scope: PerBooking},
		AddOn{Code: "kayak_rental", Price: decimal.NewFromInt(60000), Period: PerNight, Scope: PerBooking},
		AddOn{Code: "sauna", Price: decimal.NewFromInt(80000), Period: PerStay, Scope: PerBooking},
		AddOn{Code: "late_checkout", Price: decimal.NewFromInt(50000), Period: PerStay, Scope: PerRoom},
	)
}

func (c *Catalog) Get(code string) (AddOn, bool) {
	a, ok := c.items[code]
	return a, ok
}

func (c *Catalog) All() []AddOn {
	out := make([]AddOn, 0, len(c.order))
	for _, code := range c.order {
		out = append(out, c.items[code])
	}
	return out
}

type Selection struct {
	Code     string
	Quantity int
}

// Line is a priced selection as stored on a booking.
type Line struct {
	Code      string
	Quantity  int
	UnitPrice decimal.Decimal
	Total     decimal.Decimal
}

// Price resolves selections against the catalogue for a stay of the given
// shape.
func (c *Catalog) Price(selections []Selection, nights, rooms, guests int) ([]Line, decimal.Decimal, error) {
	seen := make(map[string]struct{}, len(selections))
	lines := make([]Line, 0, len(selections))
	total := decimal.Zero
	for _, s := range selections {
		a, ok := c.items[s.Code]
		if !ok {
			return nil, decimal.Zero, ErrUnknownAddOn
		}
		if _, dup := seen[s.Code]; dup {
			return nil, decimal.Zero, ErrDuplicateAddOn
		}
		seen[s.Code] = struct{}{}
		if s.Quantity < 1 || s.Quantity > maxQuantity {
			return nil, decimal.Zero, ErrInvalidQuantity
		}

		lineTotal := a.Total(s.Quantity, nights, rooms, guests)
		lines = append(lines, Line{Code: a.Code, Quantity: s.Quantity, UnitPrice: a.Price, Total: lineTotal})
		total = total.Add(lineTotal)
	}
	return lines, total, nil
}
