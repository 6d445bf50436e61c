//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=package_post_test
package package_post

import (
	"context"

	"shipping/internal/entities"
	"shipping/internal/service/draft"
	"shipping/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AddPackage(ctx context.Context, orderID string, draft entities.PackageDraft) (*entities.Package, error)
}

type Composer interface {
	ComposePackage(form draft.PackageForm) (entities.PackageDraft, error)
}
