package response

import (
	"resort-booking/internal/usecase/commands"
	"resort-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type StaffResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

type LoginResponse struct {
	AccessToken string         `json:"access_token"`
	ExpiresIn   int64          `json:"expires_in"`
	Staff       *StaffResponse `json:"staff"`
}

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{{
		SrcType: uuid.UUID{},
		DstType: copier.String,
		Fn: func(src any) (any, error) {
			return src.(uuid.UUID).String(), nil
		},
	}},
}

func FromStaffView(v *queries.AuthorizedStaffView) (*StaffResponse, error) {
	res := &StaffResponse{}
	if err := copier.CopyWithOption(res, v, copyOptions); err != nil {
		return nil, err
	}
	return res, nil
}

func FromLoginResult(r *commands.LoginResult) (*LoginResponse, error) {
	staff, err := FromStaffView(r.Staff)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{
		AccessToken: r.AccessToken,
		ExpiresIn:   int64(r.ExpiresIn.Seconds()),
		Staff:       staff,
	}, nil
}
