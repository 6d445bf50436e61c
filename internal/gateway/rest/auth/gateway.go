package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"shipping/internal/entities"
)

var ErrEmptyToken = errors.New("order service returned empty token")

type loginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type registerDTO struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type userDTO struct {
	ID        any    `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

type authResponseDTO struct {
	Token string  `json:"token"`
	User  userDTO `json:"user"`
}

// AuthGateway вызывает /auth/* сервера заказов. Клиент должен быть без TokenSource.
type AuthGateway struct {
	client client
}

func New(client client) *AuthGateway {
	return &AuthGateway{
		client: client,
	}
}

func (a *AuthGateway) Login(ctx context.Context, credentials entities.Credentials) (*entities.AuthResult, error) {
	var resp authResponseDTO

	req := loginDTO{Email: credentials.Email, Password: credentials.Password}
	if err := a.client.Do(ctx, "Login", http.MethodPost, "/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("gateway auth, login: %w", err)
	}

	return toDomain(resp)
}

func (a *AuthGateway) Register(ctx context.Context, registration entities.Registration) (*entities.AuthResult, error) {
	var resp authResponseDTO

	req := registerDTO{
		FirstName: registration.FirstName,
		LastName:  registration.LastName,
		Email:     registration.Email,
		Password:  registration.Password,
	}
	if err := a.client.Do(ctx, "Register", http.MethodPost, "/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("gateway auth, register: %w", err)
	}

	return toDomain(resp)
}

// Renewer возвращает функцию повторного логина для session.NewRenewable.
func (a *AuthGateway) Renewer(credentials entities.Credentials) func(ctx context.Context) (string, error) {
	return func(ctx context.Context) (string, error) {
		res, err := a.Login(ctx, credentials)
		if err != nil {
			return "", err
		}
		return res.Token, nil
	}
}

func toDomain(resp authResponseDTO) (*entities.AuthResult, error) {
	if resp.Token == "" {
		return nil, ErrEmptyToken
	}

	var userID string
	if resp.User.ID != nil {
		userID = fmt.Sprint(resp.User.ID)
	}

	return &entities.AuthResult{
		Token: resp.Token,
		User: entities.User{
			ID:        userID,
			Email:     resp.User.Email,
			FirstName: resp.User.FirstName,
			LastName:  resp.User.LastName,
		},
	}, nil
}
