//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import "context"

type client interface {
	Do(ctx context.Context, operation, method, path string, body, out any) error
}
