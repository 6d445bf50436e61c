//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=rest_test
package rest

import (
	"context"
	"net/http"
)

// TokenSource отдает bearer-токен для очередного запроса.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
