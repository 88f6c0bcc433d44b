package impl

import (
	"storefront/internal/domain/errors"
	"storefront/internal/domain/gateway"

	pkgerrors "github.com/pkg/errors"
)

// mapGatewayError translates gateway sentinels into the AppError the
// delivery layer renders. A rejection keeps the backend's own message as
// details so the page can surface it.
func mapGatewayError(err error) error {
	switch {
	case err == nil:
		return nil
	case pkgerrors.Is(err, gateway.ErrNotFound):
		return errors.ErrNotFound
	case pkgerrors.Is(err, gateway.ErrUnauthorized):
		return errors.ErrSessionExpired
	case pkgerrors.Is(err, gateway.ErrRejected):
		return errors.ErrBackendRejected.WithDetails(err.Error())
	default:
		return errors.ErrBackendUnavailable.WithDetails(err.Error())
	}
}
