package cart

import "slices"

// DistributeGuests assigns guests to every room instance in line order, then
// instance order. Each instance takes as many adults as fit, then children
// into the space left.
//
// There is no feasibility check: on an infeasible cart trailing guests are
// dropped, and rooms the guests run out before get an empty assignment
// rather than an invented occupant. Checkout uses Distribute instead.
func (c *Cart) DistributeGuests(totalAdults, totalChildren int) []RoomAssignment {
	remainingAdults := max(totalAdults, 0)
	remainingChildren := max(totalChildren, 0)

	out := make([]RoomAssignment, 0, c.RoomCount())
	for _, l := range c.lines {
		for range l.quantity {
			adults := min(remainingAdults, l.maxGuests)
			remainingAdults -= adults

			children := min(remainingChildren, l.maxGuests-adults)
			remainingChildren -= children

			out = append(out, RoomAssignment{
				RoomTypeID: l.roomTypeID,
				Adults:     adults,
				Children:   children,
			})
		}
	}
	return out
}

// Distribute is the checkout distribution. It rejects an infeasible cart and
// otherwise returns DistributeGuests. Only when that would leave a room
// without an occupant does it fall back to seeding: each room takes one
// guest (an adult while adults remain), then adults and finally children
// fill the remaining space in line order. A cart with more rooms than guests
// cannot be seeded and fails with ErrTooManyRooms.
func (c *Cart) Distribute(guests GuestCount) ([]RoomAssignment, error) {
	total := guests.Total()
	if !c.IsFeasible(total) {
		return nil, &CapacityError{
			Guests:    total,
			Capacity:  c.Capacity(),
			Shortfall: c.Shortfall(total),
		}
	}

	out := c.DistributeGuests(guests.Adults, guests.Children)
	if !slices.ContainsFunc(out, func(a RoomAssignment) bool { return a.Occupants() == 0 }) {
		return out, nil
	}
	if c.RoomCount() > total {
		return nil, ErrTooManyRooms
	}
	return c.seed(guests), nil
}

func (c *Cart) seed(guests GuestCount) []RoomAssignment {
	type slot struct {
		RoomAssignment
		maxGuests int
	}
	slots := make([]slot, 0, c.RoomCount())
	for _, l := range c.lines {
		for range l.quantity {
			slots = append(slots, slot{RoomAssignment: RoomAssignment{RoomTypeID: l.roomTypeID}, maxGuests: l.maxGuests})
		}
	}

	adults, children := guests.Adults, guests.Children
	for i := range slots {
		if adults > 0 {
			slots[i].Adults++
			adults--
		} else {
			slots[i].Children++
			children--
		}
	}
	for i := range slots {
		n := min(adults, slots[i].maxGuests-slots[i].Occupants())
		slots[i].Adults += n
		adults -= n
	}
	for i := range slots {
		n := min(children, slots[i].maxGuests-slots[i].Occupants())
		slots[i].Children += n
		children -= n
	}

	out := make([]RoomAssignment, len(slots))
	for i, s := range slots {
		out[i] = s.RoomAssignment
	}
	return out
}
