package cloudbeds

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/usecase/shared"
)

type reservationResponse struct {
	ReservationID string `json:"reservationID"`
	Status        string `json:"status"`
}

// CreateReservation submits one rooms[i] entry per physical room, each with
// quantity 1 and its own adults/children counts.
func (c *Client) CreateReservation(ctx context.Context, req shared.ReservationRequest) (*shared.ReservationResult, error) {
	if len(req.Rooms) == 0 {
		return nil, errs.New("reservation has no rooms")
	}

	form := url.Values{}
	form.Set("propertyID", c.propertyID)
	form.Set("startDate", req.Stay.CheckInDate())
	form.Set("endDate", req.Stay.CheckOutDate())
	form.Set("guestFirstName", req.Guest.FirstName())
	form.Set("guestLastName", req.Guest.LastName())
	form.Set("guestEmail", req.Guest.Email())
	form.Set("guestPhone", req.Guest.Phone())
	form.Set("guestCountry", req.Guest.Country())
	form.Set("thirdPartyIdentifier", req.Reference)
	form.Set("paymentMethod", "noPay")
	form.Set("sendEmailConfirmation", "false")
	if notes := req.Guest.SpecialRequests(); notes != "" {
		form.Set("customerNotes", notes)
	}
	for i, room := range req.Rooms {
		form.Set(fmt.Sprintf("rooms[%d][roomTypeID]", i), room.RoomTypeID)
		form.Set(fmt.Sprintf("rooms[%d][quantity]", i), strconv.Itoa(room.Quantity))
		form.Set(fmt.Sprintf("adults[%d][roomTypeID]", i), room.RoomTypeID)
		form.Set(fmt.Sprintf("adults[%d][quantity]", i), strconv.Itoa(room.Adults))
		form.Set(fmt.Sprintf("children[%d][roomTypeID]", i), room.RoomTypeID)
		form.Set(fmt.Sprintf("children[%d][quantity]", i), strconv.Itoa(room.Children))
	}

	var resp reservationResponse
	if err := c.do(ctx, http.MethodPost, "postReservation", nil, form, &resp); err != nil {
		return nil, err
	}
	if resp.ReservationID == "" {
		return nil, errs.Mark(errs.New("postReservation returned no reservation id"), errs.ErrProviderUnavailable)
	}

	c.logger.InfoContext(ctx, "reservation created",
		"reference", req.Reference,
		"reservation_id", resp.ReservationID,
		"rooms", len(req.Rooms))
	return &shared.ReservationResult{ReservationID: resp.ReservationID, Status: resp.Status}, nil
}

func (c *Client) ConfirmReservation(ctx context.Context, reservationID string) error {
	if err := c.setStatus(ctx, reservationID, "confirmed"); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "reservation confirmed", "reservation_id", reservationID)
	return nil
}

// CancelReservation releases the rooms held by a reservation that never got
// a local booking or a payment.
func (c *Client) CancelReservation(ctx context.Context, reservationID string) error {
	if err := c.setStatus(ctx, reservationID, "canceled"); err != nil {
		return err
	}
	c.logger.InfoContext(ctx, "reservation cancelled", "reservation_id", reservationID)
	return nil
}

func (c *Client) setStatus(ctx context.Context, reservationID, status string) error {
	if reservationID == "" {
		return errs.New("reservation id is required")
	}
	form := url.Values{}
	form.Set("propertyID", c.propertyID)
	form.Set("reservationID", reservationID)
	form.Set("status", status)
	return c.do(ctx, http.MethodPut, "putReservation", nil, form, nil)
}
