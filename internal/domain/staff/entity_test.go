//go:build unit

package staff_test

import (
	"strings"
	"testing"

	"resort-booking/internal/domain/staff"
	"resort-booking/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var cmpOpts = []cmp.Option{
	cmpopts.IgnoreUnexported(staff.Staff{}),
	cmpopts.EquateEmpty(),
}

type testCase struct {
	name   string
	mutate func(*builder.StaffBuilder)
	errIs  error
}

func TestStaff(t *testing.T) {
	t.Run("basic success", func(t *testing.T) {
		actual, err := builder.NewStaffBuilder().BuildDomain()
		require.NoError(t, err)
		require.NotNil(t, actual)

		email, _ := staff.NewEmail("frontdesk@example.com")
		expected, err := staff.NewStaff(email, "Front Desk", "hashed_password", staff.RoleOperator)
		require.NoError(t, err)

		if diff := cmp.Diff(expected, actual, cmpOpts...); diff != "" {
			t.Errorf("Staff mismatch (-want +got):\n%s", diff)
		}

		assert.NotEqual(t, uuid.Nil, actual.ID())
		assert.True(t, actual.IsActive())
		assert.Nil(t, actual.LastLogin())
	})

	t.Run("email", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "valid", mutate: func(b *builder.StaffBuilder) { b.WithEmail("Manager@Resort.mn") }},
			{name: "empty", mutate: func(b *builder.StaffBuilder) { b.WithEmail("") }, errIs: staff.ErrInvalidEmail},
			{name: "no domain", mutate: func(b *builder.StaffBuilder) { b.WithEmail("invalid-email") }, errIs: staff.ErrInvalidEmail},
			{name: "no at sign", mutate: func(b *builder.StaffBuilder) { b.WithEmail("invalidemail.com") }, errIs: staff.ErrInvalidEmail},
		})
	})

	t.Run("role", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "admin", mutate: func(b *builder.StaffBuilder) { b.WithRole("admin") }},
			{name: "operator", mutate: func(b *builder.StaffBuilder) { b.WithRole("operator") }},
			{name: "viewer", mutate: func(b *builder.StaffBuilder) { b.WithRole("viewer") }},
			{name: "unknown", mutate: func(b *builder.StaffBuilder) { b.WithRole("owner") }, errIs: staff.ErrInvalidRole},
			{name: "empty", mutate: func(b *builder.StaffBuilder) { b.WithRole("") }, errIs: staff.ErrInvalidRole},
		})
	})

	t.Run("name", func(t *testing.T) {
		runCases(t, []testCase{
			{name: "cyrillic", mutate: func(b *builder.StaffBuilder) { b.WithName("Бат-Эрдэнэ") }},
			{name: "blank", mutate: func(b *builder.StaffBuilder) { b.WithName("   ") }, errIs: staff.ErrInvalidName},
			{name: "too long", mutate: func(b *builder.StaffBuilder) { b.WithName(strings.Repeat("я", 101)) }, errIs: staff.ErrInvalidName},
		})
	})
}

func TestRole_AtLeast(t *testing.T) {
	assert.True(t, staff.RoleAdmin.AtLeast(staff.RoleOperator))
	assert.True(t, staff.RoleOperator.AtLeast(staff.RoleOperator))
	assert.False(t, staff.RoleViewer.AtLeast(staff.RoleOperator))
	assert.False(t, staff.Role("ghost").AtLeast(staff.Role("ghost")))
}

func TestEmail_Normalized(t *testing.T) {
	e, err := staff.NewEmail("  Manager@Resort.MN ")
	require.NoError(t, err)
	assert.Equal(t, "manager@resort.mn", e.Value())
}

func runCases(t *testing.T, cases []testCase) {
	t.Helper()
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			actual, err := builder.NewStaffBuilder().With(c.mutate).BuildDomain()

			if c.errIs == nil {
				require.NotNil(t, actual)
				require.NoError(t, err)
			} else {
				require.Nil(t, actual)
				require.Error(t, err)
				require.ErrorIs(t, err, c.errIs)
			}
		})
	}
}
