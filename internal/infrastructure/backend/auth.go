package backend

import (
	"context"
	"io"
	"net/http"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	"github.com/oksasatya/qos-portal/pkg/apiclient"
)

type Auth struct {
	api *apiclient.Client
}

func NewAuth(api *apiclient.Client) *Auth { return &Auth{api: api} }

// Login stores the returned access token in the client's token store as a side effect.
func (r *Auth) Login(ctx context.Context, body contract.LoginBody) (*contract.LoginData, error) {
	return item[contract.LoginData](ctx, r.api, apiclient.Request{Method: http.MethodPost, Path: apiclient.PathLogin, Body: body})
}

func (r *Auth) Register(ctx context.Context, body contract.RegisterBody) (*contract.LoginData, error) {
	return item[contract.LoginData](ctx, r.api, apiclient.Request{Method: http.MethodPost, Path: apiclient.PathRegister, Body: body})
}

func (r *Auth) SendOTP(ctx context.Context, body contract.SendOTPBody) (string, error) {
	return message(ctx, r.api, apiclient.Request{Method: http.MethodPost, Path: ResourceAuth + "/otp", Body: body})
}

func (r *Auth) ForgotPassword(ctx context.Context, body contract.ForgotPasswordBody) (string, error) {
	return message(ctx, r.api, apiclient.Request{Method: http.MethodPost, Path: ResourceAuth + "/forgot-password", Body: body})
}

// Logout revokes the request's session token. Repeated calls for a token that
// is already revoked do not reach the backend.
func (r *Auth) Logout(ctx context.Context) error {
	return r.api.Logout(ctx, r.api.Tokens().Get(ctx))
}

// GoogleLink returns the backend URL that starts the Google OAuth flow.
func (r *Auth) GoogleLink(ctx context.Context) (string, error) {
	res, err := item[string](ctx, r.api, apiclient.Request{Method: http.MethodGet, Path: ResourceAuth + "/google-link"})
	if err != nil {
		return "", err
	}
	return *res, nil
}

func (r *Auth) Me(ctx context.Context) (*entity.User, error) {
	return item[entity.User](ctx, r.api, apiclient.Request{Method: http.MethodGet, Path: ResourceAuth + "/me"})
}

type Media struct {
	api *apiclient.Client
}

func NewMedia(api *apiclient.Client) *Media { return &Media{api: api} }

func (r *Media) UploadImage(ctx context.Context, filename string, f io.Reader) (*entity.Media, error) {
	form := apiclient.NewFormData().AddFile("file", filename, f)
	return item[entity.Media](ctx, r.api, apiclient.Request{Method: http.MethodPost, Path: ResourceMedia + "/images/upload", Body: form})
}
