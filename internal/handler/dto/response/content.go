package response

import "resort-booking/internal/domain/content"

type ContentResponse struct {
	Locale string            `json:"locale"`
	Page   string            `json:"page"`
	Texts  map[string]string `json:"texts"`
}

func FromBundle(b *content.Bundle) *ContentResponse {
	texts := make(map[string]string, len(b.Texts))
	for k, v := range b.Texts {
		texts[string(k)] = v
	}
	return &ContentResponse{
		Locale: b.Locale.String(),
		Page:   string(b.Page),
		Texts:  texts,
	}
}
