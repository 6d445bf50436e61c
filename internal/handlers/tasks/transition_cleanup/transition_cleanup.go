package transition_cleanup

import (
	"context"
	"time"

	"shipping/pkg/logger"
)

type Service interface {
	CleanupTransitions(ctx context.Context) (int64, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// TransitionCleanup удаляет из журнала записи старше срока хранения.
type TransitionCleanup struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func New(log handlerLogger, service Service, interval time.Duration) *TransitionCleanup {
	return &TransitionCleanup{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (t *TransitionCleanup) TTL() time.Duration {
	return t.interval
}

// Do не должен пересекаться со следующим запуском, поэтому ограничен интервалом.
func (t *TransitionCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, t.interval)
	defer cancel()

	deleted, err := t.service.CleanupTransitions(ctxWithTimeout)
	if err != nil {
		return err
	}

	if deleted > 0 {
		t.log.With(
			logger.NewField("deleted_transitions", deleted),
		).Info("transition journal cleanup")
	}
	return nil
}

func (t *TransitionCleanup) Info() string {
	return "transition journal cleanup"
}
