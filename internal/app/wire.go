//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"time"

	"condotrack/internal/handlers/rest/building_delete"
	"condotrack/internal/handlers/rest/login_post"
	"condotrack/internal/handlers/rest/officer_delete"
	"condotrack/internal/handlers/rest/package_delete"
	"condotrack/internal/handlers/rest/package_get"
	"condotrack/internal/handlers/rest/package_log_get"
	"condotrack/internal/handlers/rest/package_patch"
	"condotrack/internal/handlers/rest/package_post"
	"condotrack/internal/handlers/rest/packages_get"
	"condotrack/internal/handlers/rest/room_delete"
	"condotrack/internal/handlers/rest/tenant_delete"
	"condotrack/internal/handlers/rest/tenant_package_logs_get"
	"condotrack/internal/handlers/rest/tenant_packages_get"
	"condotrack/internal/handlers/rest/tenant_profile_put"
	"condotrack/internal/handlers/tasks/backlog_gauge"
	"condotrack/internal/pkg/config"
	authmw "condotrack/internal/pkg/middlewares/auth"
	"condotrack/internal/pkg/token"

	accountRepo "condotrack/internal/repository/account"
	directoryRepo "condotrack/internal/repository/directory"
	"condotrack/internal/repository/pkgstore"
	"condotrack/internal/repository/statuslog"
	authService "condotrack/internal/service/auth"
	directoryService "condotrack/internal/service/directory"
	lifecycleService "condotrack/internal/service/lifecycle"
	queryService "condotrack/internal/service/query"

	"condotrack/pkg/background"
	"condotrack/pkg/logger"
	"condotrack/pkg/querier"
	"condotrack/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

type (
	BacklogInterval time.Duration
)

type Application struct {
	ServiceAuth       ServiceAuth
	ServiceLifecycle  ServiceLifecycle
	ServiceQuery      ServiceQuery
	ServiceDirectory  ServiceDirectory
	AuthMiddleware    *authmw.Middleware
	BackgroundWorkers *background.Worker
}

type ServiceAuth interface {
	login_post.Service
}

type ServiceLifecycle interface {
	package_post.Service
	package_patch.Service
	package_delete.Service
}

type ServiceQuery interface {
	packages_get.Service
	package_get.Service
	package_log_get.Service
	tenant_packages_get.Service
	tenant_package_logs_get.Service
}

type ServiceDirectory interface {
	tenant_profile_put.Service
	tenant_delete.Service
	officer_delete.Service
	room_delete.Service
	building_delete.Service
}

func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideBacklogInterval,
		provideTokenManager,

		providePackageRepository,
		provideStatusLogRepository,
		provideDirectoryRepository,
		provideAccountRepository,

		provideServiceAuth,
		provideServiceLifecycle,
		provideServiceQuery,
		provideServiceDirectory,
		provideAuthMiddleware,

		provideBacklogGaugeTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Service)),
		wire.Bind(new(ServiceLifecycle), new(*lifecycleService.Service)),
		wire.Bind(new(ServiceQuery), new(*queryService.Service)),
		wire.Bind(new(ServiceDirectory), new(*directoryService.Service)),

		wire.Bind(new(authService.Accounts), new(*accountRepo.Repository)),
		wire.Bind(new(authService.TokenIssuer), new(*token.Manager)),

		wire.Bind(new(lifecycleService.Ledger), new(*pkgstore.Repository)),
		wire.Bind(new(lifecycleService.HistoryLog), new(*statuslog.Repository)),
		wire.Bind(new(lifecycleService.TxManager), new(*tx.Manager)),

		wire.Bind(new(queryService.Ledger), new(*pkgstore.Repository)),
		wire.Bind(new(queryService.HistoryLog), new(*statuslog.Repository)),

		wire.Bind(new(directoryService.Repository), new(*directoryRepo.Repository)),
		wire.Bind(new(directoryService.PackageLedger), new(*pkgstore.Repository)),
		wire.Bind(new(directoryService.HistoryLog), new(*statuslog.Repository)),
		wire.Bind(new(directoryService.TxManager), new(*tx.Manager)),

		wire.Bind(new(backlog_gauge.Service), new(*queryService.Service)),
	)
	return &Application{}, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideTokenManager(cfg *config.Config) *token.Manager {
	return token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
}

func providePackageRepository(querier *querier.Querier) *pkgstore.Repository {
	return pkgstore.New(querier)
}

func provideStatusLogRepository(querier *querier.Querier) *statuslog.Repository {
	return statuslog.New(querier)
}

func provideDirectoryRepository(querier *querier.Querier) *directoryRepo.Repository {
	return directoryRepo.New(querier)
}

func provideAccountRepository(querier *querier.Querier) *accountRepo.Repository {
	return accountRepo.New(querier)
}

func provideServiceAuth(
	accounts authService.Accounts,
	tokens authService.TokenIssuer,
) *authService.Service {
	return authService.New(accounts, tokens)
}

func provideServiceLifecycle(
	ledger lifecycleService.Ledger,
	history lifecycleService.HistoryLog,
	txManager lifecycleService.TxManager,
) *lifecycleService.Service {
	return lifecycleService.New(ledger, history, txManager)
}

func provideServiceQuery(
	ledger queryService.Ledger,
	history queryService.HistoryLog,
) *queryService.Service {
	return queryService.New(ledger, history)
}

func provideServiceDirectory(
	repository directoryService.Repository,
	ledger directoryService.PackageLedger,
	history directoryService.HistoryLog,
	txManager directoryService.TxManager,
) *directoryService.Service {
	return directoryService.New(repository, ledger, history, txManager)
}

func provideAuthMiddleware(
	log logger.Logger,
	tokens *token.Manager,
	directory *directoryService.Service,
) *authmw.Middleware {
	return authmw.New(tokens, directory, directory, log)
}

func provideBacklogInterval(cfg *config.Config) BacklogInterval {
	return BacklogInterval(cfg.Tasks.BacklogRefreshInterval)
}

func provideBacklogGaugeTask(
	queryService backlog_gauge.Service,
	interval BacklogInterval,
) *backlog_gauge.BacklogGauge {
	return backlog_gauge.NewBacklogGauge(queryService, time.Duration(interval))
}

func provideTaskList(
	backlogGaugeTask *backlog_gauge.BacklogGauge,
) []background.Task {
	return []background.Task{
		backlogGaugeTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
