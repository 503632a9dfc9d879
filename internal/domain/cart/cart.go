package cart

import (
	"github.com/shopspring/decimal"
)

// Line records "N rooms of this type". Rate and capacity are copied from the
// offer when the line is created.
type Line struct {
	roomTypeID   string
	name         string
	ratePerNight decimal.Decimal
	maxGuests    int
	quantity     int
}

func ReconstructLine(roomTypeID, name string, ratePerNight decimal.Decimal, maxGuests, quantity int) Line {
	return Line{
		roomTypeID:   roomTypeID,
		name:         name,
		ratePerNight: ratePerNight,
		maxGuests:    maxGuests,
		quantity:     quantity,
	}
}

func (l Line) RoomTypeID() string            { return l.roomTypeID }
func (l Line) Name() string                  { return l.name }
func (l Line) RatePerNight() decimal.Decimal { return l.ratePerNight }
func (l Line) MaxGuests() int                { return l.maxGuests }
func (l Line) Quantity() int                 { return l.quantity }

func (l Line) Capacity() int {
	return l.maxGuests * l.quantity
}

func (l Line) Subtotal(nights int) decimal.Decimal {
	return l.ratePerNight.Mul(decimal.NewFromInt(int64(l.quantity) * int64(nights)))
}

// Cart holds the selected room types of one visitor session. Lines keep the
// order in which they were first added; distribution depends on that order.
// None of the operations fail: callers guard guest counts and quantities.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

func Reconstruct(lines []Line) *Cart {
	c := &Cart{lines: make([]Line, 0, len(lines))}
	for _, l := range lines {
		if l.quantity < 1 {
			continue
		}
		c.lines = append(c.lines, l)
	}
	return c
}

func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

func (c *Cart) Line(roomTypeID string) (Line, bool) {
	if i := c.indexOf(roomTypeID); i >= 0 {
		return c.lines[i], true
	}
	return Line{}, false
}

// AddRoom adds one room of the offer's type. Adding beyond the offer's
// RoomsAvailable is a no-op.
func (c *Cart) AddRoom(offer RoomOffer) {
	if i := c.indexOf(offer.RoomTypeID); i >= 0 {
		if c.lines[i].quantity+1 <= offer.RoomsAvailable {
			c.lines[i].quantity++
		}
		return
	}
	if offer.RoomsAvailable < 1 {
		return
	}
	c.lines = append(c.lines, Line{
		roomTypeID:   offer.RoomTypeID,
		name:         offer.Name,
		ratePerNight: offer.RatePerNight,
		maxGuests:    offer.MaxGuests,
		quantity:     1,
	})
}

// RemoveRoom deletes the whole line.
func (c *Cart) RemoveRoom(roomTypeID string) {
	i := c.indexOf(roomTypeID)
	if i < 0 {
		return
	}
	c.lines = append(c.lines[:i], c.lines[i+1:]...)
}

// UpdateQuantity sets the quantity to clamp(quantity+delta, 1, maxAvailable).
// maxAvailable comes from the latest search since availability changes
// between searches.
func (c *Cart) UpdateQuantity(roomTypeID string, delta, maxAvailable int) {
	i := c.indexOf(roomTypeID)
	if i < 0 {
		return
	}
	q := c.lines[i].quantity + delta
	if q > maxAvailable {
		q = maxAvailable
	}
	if q < 1 {
		q = 1
	}
	c.lines[i].quantity = q
}

func (c *Cart) Clear() {
	c.lines = nil
}

// Capacity is the number of guests the selection can legally host.
func (c *Cart) Capacity() int {
	total := 0
	for _, l := range c.lines {
		total += l.Capacity()
	}
	return total
}

// RoomCount is the number of physical room instances in the cart.
func (c *Cart) RoomCount() int {
	total := 0
	for _, l := range c.lines {
		total += l.quantity
	}
	return total
}

func (c *Cart) Total(nights int) decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal(nights))
	}
	return total
}

func (c *Cart) IsFeasible(totalGuests int) bool {
	return c.Capacity() >= totalGuests
}

func (c *Cart) Shortfall(totalGuests int) int {
	if s := totalGuests - c.Capacity(); s > 0 {
		return s
	}
	return 0
}

func (c *Cart) indexOf(roomTypeID string) int {
	for i, l := range c.lines {
		if l.roomTypeID == roomTypeID {
			return i
		}
	}
	return -1
}
