//go:build unit

package validation_test

import (
	"errors"
	"testing"

	"resort-booking/internal/handler/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Date   string `json:"date" binding:"required,isodate"`
	Locale string `json:"locale" binding:"omitempty,locale"`
	Count  int    `json:"count" binding:"min=1"`
}

func TestRegister(t *testing.T) {
	validation.Register()
	validation.Register()

	require.NoError(t, binding.Validator.ValidateStruct(&sample{Date: "2026-07-10", Locale: "mn-MN", Count: 1}))

	err := binding.Validator.ValidateStruct(&sample{Date: "10.07.2026", Locale: "de", Count: 0})
	require.Error(t, err)
	details := validation.Details(err)
	assert.Equal(t, map[string]string{
		"date":   "must be a date in YYYY-MM-DD format",
		"locale": "must be a supported language (en, mn)",
		"count":  "must be at least 1",
	}, details)
}

func TestDetails_NonValidatorError(t *testing.T) {
	assert.Equal(t, map[string]string{"body": "malformed request body"}, validation.Details(errors.New("unexpected EOF")))
}
