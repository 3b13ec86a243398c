package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/qos-portal/internal/domain/contract"
	"github.com/oksasatya/qos-portal/internal/domain/entity"
	repo "github.com/oksasatya/qos-portal/internal/domain/repository"
	"github.com/oksasatya/qos-portal/pkg/querycache"
)

const meStaleTime = 5 * time.Minute

type AuthService struct {
	Repo   repo.AuthRepository
	Cache  *querycache.Client
	Logger *logrus.Logger
}

func NewAuthService(r repo.AuthRepository, cache *querycache.Client, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: r, Cache: cache, Logger: logger}
}

// Login returns the backend's access token; the caller turns it into the session cookie.
func (s *AuthService) Login(ctx context.Context, body contract.LoginBody) (*contract.LoginData, error) {
	data, err := s.Repo.Login(ctx, body)
	if err != nil {
		return nil, err
	}
	if s.Logger != nil && data.User != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": data.User.ID, "role": data.User.Role}).Info("user logged in")
	}
	return data, nil
}

func (s *AuthService) Register(ctx context.Context, body contract.RegisterBody) (*contract.LoginData, error) {
	data, err := s.Repo.Register(ctx, body)
	if err != nil {
		return nil, err
	}
	s.Cache.Invalidate(ctx, ResUsers)
	return data, nil
}

func (s *AuthService) SendOTP(ctx context.Context, body contract.SendOTPBody) (string, error) {
	return s.Repo.SendOTP(ctx, body)
}

func (s *AuthService) ForgotPassword(ctx context.Context, body contract.ForgotPasswordBody) (string, error) {
	return s.Repo.ForgotPassword(ctx, body)
}

// Logout ends the backend session. The local session is dropped by the caller
// whatever the backend answers.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.Repo.Logout(ctx)
}

func (s *AuthService) GoogleLink(ctx context.Context) (string, error) {
	return s.Repo.GoogleLink(ctx)
}

// Me is the profile of the current session, cached per session.
func (s *AuthService) Me(ctx context.Context) (*entity.User, error) {
	return querycache.Fetch(ctx, s.Cache, querycache.NewKey(ResMe, "profile"), func(ctx context.Context) (*entity.User, error) {
		return s.Repo.Me(ctx)
	}, querycache.WithStaleTime(meStaleTime))
}
