package cloudbeds

import (
	"context"
	"net/http"
	"net/url"

	"resort-booking/internal/domain/cart"
	"resort-booking/internal/domain/stay"

	"github.com/shopspring/decimal"
)

type roomTypeJSON struct {
	RoomTypeID     string          `json:"roomTypeID"`
	RoomTypeName   string          `json:"roomTypeName"`
	RoomRate       decimal.Decimal `json:"roomRate"`
	MaxGuests      flexInt         `json:"maxGuests"`
	RoomsAvailable flexInt         `json:"roomsAvailable"`
}

type availabilityResponse struct {
	Data []struct {
		PropertyID    string         `json:"propertyID"`
		PropertyRooms []roomTypeJSON `json:"propertyRooms"`
	} `json:"data"`
}

// FetchAvailability lists room types with at least one free room. Types
// without a guest limit are skipped since they cannot hold anyone.
func (c *Client) FetchAvailability(ctx context.Context, st stay.Stay, currency string) ([]cart.RoomOffer, error) {
	query := url.Values{}
	query.Set("propertyIDs", c.propertyID)
	query.Set("startDate", st.CheckInDate())
	query.Set("endDate", st.CheckOutDate())

	var resp availabilityResponse
	if err := c.do(ctx, http.MethodGet, "getAvailableRoomTypes", query, nil, &resp); err != nil {
		return nil, err
	}

	var offers []cart.RoomOffer
	for _, property := range resp.Data {
		for _, r := range property.PropertyRooms {
			if r.RoomTypeID == "" || r.MaxGuests <= 0 || r.RoomsAvailable <= 0 {
				continue
			}
			offers = append(offers, cart.RoomOffer{
				RoomTypeID:     r.RoomTypeID,
				Name:           r.RoomTypeName,
				RatePerNight:   r.RoomRate,
				Currency:       currency,
				MaxGuests:      int(r.MaxGuests),
				RoomsAvailable: int(r.RoomsAvailable),
			})
		}
	}
	c.logger.DebugContext(ctx, "availability fetched",
		"check_in", st.CheckInDate(),
		"check_out", st.CheckOutDate(),
		"offers", len(offers))
	return offers, nil
}
