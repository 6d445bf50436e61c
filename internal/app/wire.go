//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"
	"time"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	"shipping/internal/entities"
	"shipping/internal/gateway/rest"
	authGateway "shipping/internal/gateway/rest/auth"
	orderGateway "shipping/internal/gateway/rest/order"
	auth_login_post "shipping/internal/handlers/rest/auth_login_post"
	auth_register_post "shipping/internal/handlers/rest/auth_register_post"
	order_get "shipping/internal/handlers/rest/order_get"
	order_post "shipping/internal/handlers/rest/order_post"
	order_status_patch "shipping/internal/handlers/rest/order_status_patch"
	order_submit_post "shipping/internal/handlers/rest/order_submit_post"
	order_transitions_get "shipping/internal/handlers/rest/order_transitions_get"
	orders_get "shipping/internal/handlers/rest/orders_get"
	package_delete "shipping/internal/handlers/rest/package_delete"
	package_post "shipping/internal/handlers/rest/package_post"
	"shipping/internal/handlers/tasks/transition_cleanup"
	"shipping/internal/pkg/config"
	"shipping/internal/pkg/factory/transition_policy"
	transitionRepo "shipping/internal/repository/transition"
	"shipping/internal/service/draft"
	orderService "shipping/internal/service/order"
	"shipping/internal/session"
	"shipping/pkg/background"
	"shipping/pkg/logger"
	"shipping/pkg/querier"
	"shipping/pkg/tx"
)

type (
	CleanupInterval     time.Duration
	TransitionRetention time.Duration
)

type Application struct {
	ServiceOrder      ServiceOrder
	ServiceAuth       ServiceAuth
	Composer          Composer
	Policy            *transition_policy.Policy
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	orders_get.Service
	order_get.Service
	order_post.Service
	order_status_patch.Service
	order_submit_post.Service
	package_post.Service
	package_delete.Service
	order_transitions_get.Service
}

type ServiceAuth interface {
	auth_login_post.Service
	auth_register_post.Service
}

type Composer interface {
	order_post.Composer
	package_post.Composer
}

// InitializeApplication для HTTP сервиса (cmd/service).
// Запросы к серверу заказов идут с токеном клиента из контекста запроса.
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideCleanupInterval,
		provideTransitionRetention,

		provideTransitionRepository,
		provideTransitionPolicy,
		provideComposer,

		provideContextTokenSource,
		provideOrderGateway,
		provideAuthGateway,
		provideOrderService,

		provideTransitionCleanupTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceAuth), new(*authGateway.AuthGateway)),
		wire.Bind(new(Composer), new(*draft.Composer)),

		wire.Bind(new(transitionRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderService.OrderGateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(orderService.TransitionJournal), new(*transitionRepo.Repository)),
		wire.Bind(new(orderService.TransitionPolicy), new(*transition_policy.Policy)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(transition_cleanup.Service), new(*orderService.Service)),
	)
	return &Application{}, nil
}

type KafkaWorkerApp struct {
	OrderService *orderService.Service
	Session      *session.Session
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed).
// Воркер работает от собственной сессии: ORDER_API_TOKEN или логин по ORDER_API_EMAIL/PASSWORD.
func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideTransitionRetention,

		provideTransitionRepository,
		provideTransitionPolicy,

		provideAuthGateway,
		provideWorkerSession,
		provideOrderGateway,
		provideOrderService,

		wire.Struct(new(KafkaWorkerApp), "*"),

		wire.Bind(new(rest.TokenSource), new(*session.Session)),
		wire.Bind(new(transitionRepo.Querier), new(*querier.Querier)),
		wire.Bind(new(orderService.OrderGateway), new(*orderGateway.OrderGateway)),
		wire.Bind(new(orderService.TransitionJournal), new(*transitionRepo.Repository)),
		wire.Bind(new(orderService.TransitionPolicy), new(*transition_policy.Policy)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTransitionRepository(querier transitionRepo.Querier) *transitionRepo.Repository {
	return transitionRepo.New(querier)
}

func provideTransitionPolicy(cfg *config.Config) (*transition_policy.Policy, error) {
	return transition_policy.New(cfg.Orders.TransitionPolicy)
}

func provideComposer(cfg *config.Config) (*draft.Composer, error) {
	loc, err := cfg.Orders.Location()
	if err != nil {
		return nil, err
	}
	return draft.NewComposer(loc), nil
}

func provideContextTokenSource() rest.TokenSource {
	return session.ContextSource{}
}

func provideOrderGateway(httpClient *http.Client, tokens rest.TokenSource, cfg *config.Config) (*orderGateway.OrderGateway, error) {
	client, err := rest.NewClient(cfg.OrderAPI.BaseURL, httpClient, rest.WithTokenSource(tokens))
	if err != nil {
		return nil, err
	}
	return orderGateway.New(client), nil
}

func provideAuthGateway(httpClient *http.Client, cfg *config.Config) (*authGateway.AuthGateway, error) {
	client, err := rest.NewClient(cfg.OrderAPI.BaseURL, httpClient)
	if err != nil {
		return nil, err
	}
	return authGateway.New(client), nil
}

func provideWorkerSession(ctx context.Context, cfg *config.Config, gateway *authGateway.AuthGateway) (*session.Session, error) {
	if cfg.OrderAPI.Email != "" {
		return session.NewRenewable(ctx, gateway.Renewer(entities.Credentials{
			Email:    cfg.OrderAPI.Email,
			Password: cfg.OrderAPI.Password,
		}))
	}
	return session.New(cfg.OrderAPI.Token)
}

func provideTransitionRetention(cfg *config.Config) TransitionRetention {
	return TransitionRetention(cfg.Tasks.TransitionsRetention)
}

func provideOrderService(
	gateway orderService.OrderGateway,
	journal orderService.TransitionJournal,
	txManager orderService.TxManager,
	policy orderService.TransitionPolicy,
	retention TransitionRetention,
	log logger.Logger,
) *orderService.Service {
	return orderService.New(gateway, journal, txManager, policy, time.Duration(retention), log)
}

func provideCleanupInterval(cfg *config.Config) CleanupInterval {
	return CleanupInterval(cfg.Tasks.TransitionsCleanupInterval)
}

func provideTransitionCleanupTask(
	log logger.Logger,
	service transition_cleanup.Service,
	interval CleanupInterval,
) *transition_cleanup.TransitionCleanup {
	return transition_cleanup.New(log, service, time.Duration(interval))
}

func provideTaskList(
	transitionCleanupTask *transition_cleanup.TransitionCleanup,
) []background.Task {
	return []background.Task{
		transitionCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
