package request

import (
	"strings"

	"resort-booking/internal/domain/addon"
	"resort-booking/internal/pkg/i18n"
	"resort-booking/internal/usecase/commands"

	"github.com/jinzhu/copier"
)

type GuestRequest struct {
	FirstName       string `json:"first_name" binding:"required,max=100"`
	LastName        string `json:"last_name" binding:"required,max=100"`
	Email           string `json:"email" binding:"required,email"`
	Phone           string `json:"phone" binding:"omitempty,max=32"`
	Country         string `json:"country" binding:"omitempty,len=2"`
	SpecialRequests string `json:"special_requests" binding:"max=1000"`
}

type AddOnRequest struct {
	Code     string `json:"code" binding:"required,max=64"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=50"`
}

type CheckoutRequest struct {
	Guest         GuestRequest   `json:"guest" binding:"required"`
	AddOns        []AddOnRequest `json:"add_ons" binding:"omitempty,max=20,dive"`
	PaymentMethod string         `json:"payment_method" binding:"required,oneof=qpay card"`
	Locale        string         `json:"locale" binding:"omitempty,locale"`
}

// ToInput prefers the locale chosen in the form over the request locale.
func (r CheckoutRequest) ToInput(requestLocale i18n.Locale) (commands.CheckoutInput, error) {
	in := commands.CheckoutInput{
		PaymentMethod: r.PaymentMethod,
		Locale:        requestLocale,
	}
	if l, ok := i18n.Parse(r.Locale); ok {
		in.Locale = l
	}
	if err := copier.Copy(&in.Guest, &r.Guest); err != nil {
		return commands.CheckoutInput{}, err
	}
	in.Guest.Country = strings.ToUpper(in.Guest.Country)
	in.AddOns = make([]addon.Selection, 0, len(r.AddOns))
	for _, a := range r.AddOns {
		in.AddOns = append(in.AddOns, addon.Selection{Code: a.Code, Quantity: a.Quantity})
	}
	return in, nil
}
