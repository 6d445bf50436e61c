package background

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"shipping/pkg/logger"

	"golang.org/x/sync/errgroup"
)

// Task - периодическая фоновая задача.
type Task interface {
	// TTL - интервал между запусками.
	TTL() time.Duration

	Do(context.Context) error

	// Info - имя задачи для логов.
	Info() string
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Worker запускает задачи по их TTL до отмены контекста.
type Worker struct {
	log   handlerLogger
	tasks []Task
	group *errgroup.Group
}

// New выполняет каждую задачу один раз синхронно и только потом запускает
// периодическое выполнение. Ошибка или паника первого запуска возвращается
// из New, и Worker не создается.
func New(ctx context.Context, log handlerLogger, tasks []Task) (*Worker, error) {
	worker := &Worker{
		log:   log,
		tasks: tasks,
		group: &errgroup.Group{},
	}
	if len(tasks) == 0 {
		return worker, nil
	}

	initGroup, initCtx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		initGroup.Go(func() error {
			log.Info("initializing task",
				logger.NewField("task", task.Info()),
			)
			return worker.safeDo(initCtx, task)
		})
	}

	if err := initGroup.Wait(); err != nil {
		return nil, fmt.Errorf("failed to initialize tasks: %w", err)
	}

	for _, task := range tasks {
		worker.group.Go(func() error {
			worker.run(ctx, task)
			return nil
		})
	}

	return worker, nil
}

// Wait блокируется, пока все задачи не остановятся после отмены контекста.
func (w *Worker) Wait() {
	_ = w.group.Wait()
}

func (w *Worker) run(ctx context.Context, task Task) {
	taskLog := w.log.With(logger.NewField("task", task.Info()))

	ttl := task.TTL()
	if ttl <= 0 {
		taskLog.Warn("invalid TTL, skipping periodic execution",
			logger.NewField("ttl", ttl),
		)
		return
	}
	taskLog.Info("starting periodic execution",
		logger.NewField("ttl", ttl),
	)

	ticker := time.NewTicker(ttl)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			taskLog.Info("stopping task")
			return
		case <-ticker.C:
			if err := w.safeDo(ctx, task); err != nil {
				taskLog.Error("background task failed",
					logger.NewField("error", err),
				)
			}
		}
	}
}

func (w *Worker) safeDo(ctx context.Context, task Task) (err error) {
	defer func() {
		if r := recover(); r != nil {
			stack := debug.Stack()
			w.log.Error("background task panic",
				logger.NewField("task", task.Info()),
				logger.NewField("recover", r),
				logger.NewField("stack", string(stack)),
			)
			err = fmt.Errorf("task %s panic: %v", task.Info(), r)
		}
	}()

	return task.Do(ctx)
}
