package request

import (
	"resort-booking/internal/pkg/i18n"
	"resort-booking/internal/usecase/queries"
)

type SearchRequest struct {
	CheckIn  string `json:"check_in" binding:"required,isodate"`
	CheckOut string `json:"check_out" binding:"required,isodate"`
	Adults   int    `json:"adults" binding:"required,min=1,max=30"`
	Children int    `json:"children" binding:"min=0,max=30"`
}

func (r SearchRequest) ToInput(locale i18n.Locale) queries.SearchInput {
	return queries.SearchInput{
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Adults:   r.Adults,
		Children: r.Children,
		Locale:   locale,
	}
}
