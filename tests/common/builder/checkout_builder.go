//go:build unit || e2e

package builder

import (
	reqdto "resort-booking/internal/handler/dto/request"
)

type CheckoutRequestBuilder struct {
	req reqdto.CheckoutRequest
}

func NewCheckoutRequestBuilder() *CheckoutRequestBuilder {
	return &CheckoutRequestBuilder{req: reqdto.CheckoutRequest{
		Guest: reqdto.GuestRequest{
			FirstName: "Saraa",
			LastName:  "Bold",
			Email:     "saraa@example.com",
			Phone:     "+97699112233",
			Country:   "mn",
		},
		AddOns:        []reqdto.AddOnRequest{{Code: "breakfast", Quantity: 1}},
		PaymentMethod: "qpay",
	}}
}

func (b *CheckoutRequestBuilder) WithMethod(m string) *CheckoutRequestBuilder {
	b.req.PaymentMethod = m
	return b
}

func (b *CheckoutRequestBuilder) WithLocale(l string) *CheckoutRequestBuilder {
	b.req.Locale = l
	return b
}

func (b *CheckoutRequestBuilder) WithoutAddOns() *CheckoutRequestBuilder {
	b.req.AddOns = nil
	return b
}

func (b *CheckoutRequestBuilder) BuildDTO() reqdto.CheckoutRequest {
	return b.req
}
