package queries

import (
	"resort-booking/internal/domain/content"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/i18n"
)

var ErrPageNotFound = errs.New("page not found")

type ContentQueries interface {
	GetPage(locale i18n.Locale, page string) (*content.Bundle, error)
}

type contentQueriesImpl struct {
	catalog *content.Catalog
}

// NewContentQueries refuses to start with an incomplete catalogue.
func NewContentQueries(catalog *content.Catalog) (ContentQueries, error) {
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &contentQueriesImpl{catalog: catalog}, nil
}

func (q *contentQueriesImpl) GetPage(locale i18n.Locale, page string) (*content.Bundle, error) {
	p, ok := content.ParsePage(page)
	if !ok {
		return nil, ErrPageNotFound
	}
	if !locale.IsValid() {
		locale = i18n.English
	}
	b := q.catalog.Bundle(locale, p)
	return &b, nil
}
