package impl

import (
	"context"
	"log/slog"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"
	"storefront/internal/usecase"

	pkgerrors "github.com/pkg/errors"
)

// accountService implements usecase.AccountUsecase.
type accountService struct {
	accounts gateway.AccountGateway
	sessions service.SessionStore
	verifier service.IdentityVerifier
	logger   *slog.Logger
}

// NewAccountService is the constructor for accountService.
func NewAccountService(
	accounts gateway.AccountGateway,
	sessions service.SessionStore,
	verifier service.IdentityVerifier,
	logger *slog.Logger,
) usecase.AccountUsecase {
	return &accountService{
		accounts: accounts,
		sessions: sessions,
		verifier: verifier,
		logger:   logger,
	}
}

// establish persists the credentials the backend issued. This is the only
// place a session gets written.
func (srv *accountService) establish(creds *gateway.Credentials) (*usecase.SignInOutput, error) {
	session := service.Session{Token: creds.Token, UserID: creds.UserID}
	if !session.Valid() {
		return nil, domainerrors.ErrBackendRejected.WithDetails("incomplete credentials in sign-in response")
	}

	if err := srv.sessions.Save(session); err != nil {
		return nil, domainerrors.ErrBackendUnavailable.WithDetails("persist session failed")
	}

	return &usecase.SignInOutput{UserID: creds.UserID, User: creds.User}, nil
}

func (srv *accountService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.SignInOutput, error) {
	creds, err := srv.accounts.Login(ctx, input.Email, input.Password)
	if err != nil {
		if pkgerrors.Is(err, gateway.ErrRejected) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, mapGatewayError(err)
	}

	return srv.establish(creds)
}

func (srv *accountService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.SignInOutput, error) {
	creds, err := srv.accounts.Register(ctx, gateway.RegisterInput{
		Name:     input.Name,
		Email:    input.Email,
		Password: input.Password,
	})
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return srv.establish(creds)
}

func (srv *accountService) GoogleLogin(ctx context.Context, input usecase.GoogleLoginInput) (*usecase.SignInOutput, error) {
	identity, err := srv.verifier.Verify(ctx, input.IDToken)
	if err != nil {
		srv.logger.Warn("google id token rejected", slog.Any("error", err))

		return nil, domainerrors.ErrInvalidCredentials
	}

	creds, err := srv.accounts.GoogleLogin(ctx, *identity)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return srv.establish(creds)
}

func (srv *accountService) Logout(_ context.Context) error {
	if err := srv.sessions.Invalidate(); err != nil {
		return domainerrors.ErrBackendUnavailable.WithDetails("clear session failed")
	}

	return nil
}

func (srv *accountService) Profile(ctx context.Context, userID string) (*entity.User, error) {
	user, err := srv.accounts.Profile(ctx, userID)
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return user, nil
}

func (srv *accountService) UpdateProfile(ctx context.Context, userID string, input usecase.UpdateProfileInput) (*entity.User, error) {
	user, err := srv.accounts.UpdateProfile(ctx, userID, gateway.ProfileUpdate{
		Name:   input.Name,
		Phone:  input.Phone,
		Avatar: input.Avatar,
	})
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return user, nil
}

func (srv *accountService) AddressBook(ctx context.Context, userID string) (*usecase.AddressBookView, error) {
	addresses, err := srv.accounts.Addresses(ctx, userID)
	if err != nil {
		return nil, mapGatewayError(err)
	}
	if addresses == nil {
		addresses = []entity.Address{}
	}

	return &usecase.AddressBookView{
		Addresses:     addresses,
		SelectedIndex: entity.DefaultAddressIndex(addresses),
	}, nil
}

func (srv *accountService) CreateAddress(ctx context.Context, userID string, input usecase.CreateAddressInput) (*entity.Address, error) {
	addressType := entity.AddressType(input.Type)
	if input.Type == "" {
		addressType = entity.AddressTypeHome
	}
	if !addressType.Valid() {
		return nil, domainerrors.ErrInvalidInput.WithDetails("unknown address type")
	}

	created, err := srv.accounts.CreateAddress(ctx, userID, entity.Address{
		FullName:   input.FullName,
		Phone:      input.Phone,
		Street:     input.Street,
		Apartment:  input.Apartment,
		City:       input.City,
		State:      input.State,
		PostalCode: input.PostalCode,
		Country:    input.Country,
		Type:       addressType,
		IsDefault:  input.IsDefault,
	})
	if err != nil {
		return nil, mapGatewayError(err)
	}

	return created, nil
}
