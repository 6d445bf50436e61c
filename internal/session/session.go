package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

var (
	ErrNoCredential = errors.New("no credential")
	ErrExpired      = errors.New("session expired")
)

// RenewFunc получает новый токен, например повторным логином.
type RenewFunc func(ctx context.Context) (string, error)

type Claims struct {
	UserID    string
	Email     string
	ExpiresAt time.Time
}

// Session хранит bearer-токен одного пользователя сервера заказов.
// Подпись токена не проверяется: это задача сервера заказов,
// здесь читаются только claims для контроля срока действия.
type Session struct {
	mu     sync.RWMutex
	token  string
	claims Claims
	closed bool

	renew RenewFunc
	now   func() time.Time
}

func New(token string) (*Session, error) {
	s := &Session{now: time.Now}
	if err := s.set(token); err != nil {
		return nil, err
	}
	return s, nil
}

// NewRenewable открывает сессию через renew и повторяет его, когда токен истекает.
func NewRenewable(ctx context.Context, renew RenewFunc) (*Session, error) {
	token, err := renew(ctx)
	if err != nil {
		return nil, fmt.Errorf("session open: %w", err)
	}

	s := &Session{renew: renew, now: time.Now}
	if err := s.set(token); err != nil {
		return nil, err
	}
	return s, nil
}

// Token возвращает действующий токен. Истекший токен обновляется через renew,
// а без него возвращается ErrExpired.
func (s *Session) Token(ctx context.Context) (string, error) {
	s.mu.RLock()
	token, claims, closed := s.token, s.claims, s.closed
	s.mu.RUnlock()

	if closed {
		return "", ErrNoCredential
	}
	if !expired(claims, s.now()) {
		return token, nil
	}
	if s.renew == nil {
		return "", ErrExpired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", ErrNoCredential
	}
	// другой вызов мог уже обновить токен
	if !expired(s.claims, s.now()) {
		return s.token, nil
	}

	fresh, err := s.renew(ctx)
	if err != nil {
		return "", fmt.Errorf("session renew: %w", err)
	}
	claims, err = parseClaims(fresh)
	if err != nil {
		return "", err
	}
	s.token, s.claims = fresh, claims
	return fresh, nil
}

func (s *Session) Claims() Claims {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.claims
}

func (s *Session) Valid(now time.Time) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return !s.closed && !expired(s.claims, now)
}

// Close забывает токен, дальнейшие Token возвращают ErrNoCredential.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.claims = Claims{}
	s.closed = true
}

func (s *Session) set(token string) error {
	claims, err := parseClaims(token)
	if err != nil {
		return err
	}
	s.token, s.claims = token, claims
	return nil
}

func expired(c Claims, now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// parseClaims читает exp, user_id и email. Непрозрачный (не JWT) токен
// принимается как бессрочный.
func parseClaims(token string) (Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Claims{}, ErrNoCredential
	}
	if strings.Count(token, ".") != 2 {
		return Claims{}, nil
	}

	mapClaims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, mapClaims); err != nil {
		return Claims{}, fmt.Errorf("parse token: %w", err)
	}

	var claims Claims
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}
	if userID, ok := mapClaims["user_id"]; ok && userID != nil {
		claims.UserID = fmt.Sprint(userID)
	}
	if email, ok := mapClaims["email"].(string); ok {
		claims.Email = email
	}
	return claims, nil
}
