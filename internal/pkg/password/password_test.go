//go:build unit

package password_test

import (
	"strings"
	"testing"

	"resort-booking/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	cases := []struct {
		name      string
		plain     string
		expectErr error
	}{
		{name: "valid", plain: "lakeside-2026"},
		{name: "multibyte counts runes", plain: "нуурынэрэг"},
		{name: "empty", plain: "", expectErr: password.ErrEmpty},
		{name: "short", plain: "short", expectErr: password.ErrTooShort},
		{name: "past the bcrypt limit", plain: strings.Repeat("a", password.MaxBytes+1), expectErr: password.ErrTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hashed, err := password.HashPassword(tc.plain)
			if tc.expectErr != nil {
				assert.ErrorIs(t, err, tc.expectErr)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, tc.plain, hashed)
			assert.NoError(t, password.ComparePassword(hashed, tc.plain))
		})
	}
}

func TestComparePassword(t *testing.T) {
	hashed, err := password.HashPassword("lakeside-2026")
	require.NoError(t, err)

	assert.ErrorIs(t, password.ComparePassword(hashed, "lakeside-2027"), password.ErrMismatch)
	assert.ErrorIs(t, password.ComparePassword("", "lakeside-2026"), password.ErrEmpty)
	assert.Error(t, password.ComparePassword("not-a-hash", "lakeside-2026"))
	assert.ErrorIs(t, password.CompareDummy("anything"), password.ErrMismatch)
}
