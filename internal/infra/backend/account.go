package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/gateway"
	"storefront/internal/domain/service"

	"github.com/pkg/errors"
)

// accountGateway implements gateway.AccountGateway.
type accountGateway struct {
	client *Client
}

// NewAccountGateway wires the user, auth and address endpoints.
func NewAccountGateway(client *Client) gateway.AccountGateway {
	return &accountGateway{client: client}
}

// wireCredentials is the auth response shape. The user id arrives either as
// a top-level field or inside the embedded user object.
type wireCredentials struct {
	Token  string    `json:"token"`
	UserID string    `json:"userId"`
	User   *wireUser `json:"user"`
}

func (w wireCredentials) toGateway() (*gateway.Credentials, error) {
	creds := &gateway.Credentials{Token: w.Token, UserID: w.UserID}
	if w.User != nil {
		user := w.User.toEntity()
		creds.User = &user
		if creds.UserID == "" {
			creds.UserID = user.ID
		}
	}
	if creds.Token == "" || creds.UserID == "" {
		return nil, errors.New("auth response missing token or user id")
	}

	return creds, nil
}

func (g *accountGateway) authenticate(ctx context.Context, path string, body any) (*gateway.Credentials, error) {
	raw, err := g.client.send(ctx, requestSpec{
		method: http.MethodPost,
		path:   path,
		body:   body,
	})
	if err != nil {
		return nil, err
	}

	wire, err := decodeObject[wireCredentials](raw)
	if err != nil {
		return nil, err
	}

	return wire.toGateway()
}

func (g *accountGateway) Login(ctx context.Context, email, password string) (*gateway.Credentials, error) {
	return g.authenticate(ctx, "/api/users/login", map[string]string{
		"email":    email,
		"password": password,
	})
}

func (g *accountGateway) Register(ctx context.Context, input gateway.RegisterInput) (*gateway.Credentials, error) {
	return g.authenticate(ctx, "/api/users/register", map[string]string{
		"name":     input.Name,
		"email":    input.Email,
		"password": input.Password,
	})
}

func (g *accountGateway) GoogleLogin(ctx context.Context, identity service.GoogleIdentity) (*gateway.Credentials, error) {
	return g.authenticate(ctx, "/api/users/google-login", map[string]string{
		"googleId": identity.Subject,
		"email":    identity.Email,
		"name":     identity.Name,
		"avatar":   identity.Picture,
	})
}

func (g *accountGateway) Profile(ctx context.Context, userID string) (*entity.User, error) {
	raw, err := g.client.get(ctx, "/api/users/"+url.PathEscape(userID), nil, true)
	if err != nil {
		return nil, err
	}

	wire, err := decodeObject[wireUser](raw, "user")
	if err != nil {
		return nil, err
	}

	user := wire.toEntity()
	if user.ID == "" {
		user.ID = userID
	}

	return &user, nil
}

func (g *accountGateway) UpdateProfile(ctx context.Context, userID string, update gateway.ProfileUpdate) (*entity.User, error) {
	body := map[string]any{}
	if update.Name != nil {
		body["name"] = *update.Name
	}
	if update.Phone != nil {
		body["phone"] = *update.Phone
	}
	if update.Avatar != nil {
		body["avatar"] = *update.Avatar
	}

	raw, err := g.client.send(ctx, requestSpec{
		method: http.MethodPut,
		path:   "/api/users/" + url.PathEscape(userID),
		body:   body,
		authed: true,
	})
	if err != nil {
		return nil, err
	}

	wire, err := decodeObject[wireUser](raw, "user")
	if err != nil {
		return nil, err
	}

	user := wire.toEntity()
	if user.ID == "" {
		user.ID = userID
	}

	return &user, nil
}

func (g *accountGateway) Addresses(ctx context.Context, userID string) ([]entity.Address, error) {
	raw, err := g.client.get(ctx, "/api/users/addresses/"+url.PathEscape(userID), nil, true)
	if err != nil {
		return nil, err
	}

	wires, err := decodeList[wireAddress](raw, "addresses")
	if err != nil {
		return nil, err
	}

	addresses := make([]entity.Address, len(wires))
	for i, w := range wires {
		addresses[i] = w.toEntity()
	}

	return addresses, nil
}

func (g *accountGateway) CreateAddress(ctx context.Context, userID string, address entity.Address) (*entity.Address, error) {
	raw, err := g.client.send(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/users/addresses/" + url.PathEscape(userID),
		body:   address,
		authed: true,
	})
	if err != nil {
		return nil, err
	}

	created, err := decodeObject[wireAddress](raw, "address")
	if err != nil {
		// Some deployments return the full refreshed list instead of the
		// created record; fall back to echoing the input.
		var probe json.RawMessage
		if jsonErr := json.Unmarshal(raw, &probe); jsonErr == nil {
			echo := address

			return &echo, nil
		}

		return nil, err
	}

	result := created.toEntity()

	return &result, nil
}
