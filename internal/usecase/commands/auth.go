package commands

import (
	"context"
	"log/slog"
	"time"

	"resort-booking/internal/domain/staff"
	"resort-booking/internal/pkg/errs"
	"resort-booking/internal/pkg/jwt"
	"resort-booking/internal/pkg/password"
	"resort-booking/internal/usecase/queries"
	"resort-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials   = errs.New("invalid credentials")
	ErrStaffInactive        = errs.New("staff inactive")
	ErrAuthenticationFailed = errs.New("authentication failed")
	ErrTokenGeneration      = errs.New("token generation failed")
)

type LoginResult struct {
	StaffID     uuid.UUID
	AccessToken string
	ExpiresIn   time.Duration
	Staff       *queries.AuthorizedStaffView
}

type AuthCommands interface {
	Login(ctx context.Context, email, pass string) (*LoginResult, error)
}

type authCommandsImpl struct {
	uow        shared.UnitOfWork
	readStore  queries.StaffReadStore
	jwtService *jwt.Service
}

func NewAuthCommands(uow shared.UnitOfWork, readStore queries.StaffReadStore, jwtService *jwt.Service) AuthCommands {
	return &authCommandsImpl{
		uow:        uow,
		readStore:  readStore,
		jwtService: jwtService,
	}
}

func (a *authCommandsImpl) Login(ctx context.Context, email, pass string) (*LoginResult, error) {
	credentials, err := staff.NewCredentials(email, pass)
	if err != nil {
		// Malformed input gets the same answer as a wrong password
		return nil, errs.Mark(err, ErrInvalidCredentials)
	}

	view, err := a.validateStaff(ctx, credentials)
	if err != nil {
		return nil, err
	}

	role, err := staff.NewRole(view.Role)
	if err != nil {
		return nil, errs.Mark(err, ErrAuthenticationFailed)
	}

	accessToken, err := a.jwtService.GenerateAccessToken(view.ID, role)
	if err != nil {
		return nil, errs.Mark(err, ErrTokenGeneration)
	}

	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Staff().UpdateLastLogin(ctx, tx.DB(), view.ID)
	})
	if err != nil {
		// Login already succeeded; only the audit column is stale.
		slog.WarnContext(ctx, "failed to update last login", "staff_id", view.ID, "error", err.Error())
	}

	return &LoginResult{
		StaffID:     view.ID,
		AccessToken: accessToken,
		ExpiresIn:   a.jwtService.TokenDuration(),
		Staff:       view,
	}, nil
}

func (a *authCommandsImpl) validateStaff(ctx context.Context, credentials staff.Credentials) (*queries.AuthorizedStaffView, error) {
	view, hashedPassword, err := a.readStore.FindByEmail(ctx, credentials.Email().Value())
	if err != nil || view == nil {
		// indistinguishable from a wrong password, timing included
		_ = password.CompareDummy(credentials.Password().Value())
		return nil, ErrInvalidCredentials
	}

	if err := password.ComparePassword(hashedPassword, credentials.Password().Value()); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !view.IsActive {
		return nil, ErrStaffInactive
	}

	return view, nil
}
