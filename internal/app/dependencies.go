package app

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/feedshop/order-settlement/internal/cache"
	"github.com/feedshop/order-settlement/internal/config"
	"github.com/feedshop/order-settlement/internal/domain"
	"github.com/feedshop/order-settlement/internal/handlers"
	"github.com/feedshop/order-settlement/internal/notifier"
	"github.com/feedshop/order-settlement/internal/repository/postgres"
	"github.com/feedshop/order-settlement/internal/scheduler"
	"github.com/feedshop/order-settlement/internal/service"
)

// balanceCacheTTL время жизни кешированного баланса
const balanceCacheTTL = 5 * time.Minute

// repositories содержит все репозитории приложения
type repositories struct {
	order  domain.OrderRepository
	ledger domain.LedgerRepository
	reward domain.RewardRepository
}

// services содержит все сервисы приложения
type services struct {
	points  domain.PointLedger
	orders  *service.OrderService
	rewards domain.RewardQueue
	pricer  domain.ProductPricer
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	health *handlers.HealthHandler
	ops    *handlers.OpsHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos     *repositories
	services  *services
	handlers  *handlerSet
	scheduler *scheduler.Scheduler
	redis     *redis.Client
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) *dependencies {
	// Создание репозиториев
	repos := &repositories{
		order:  postgres.NewOrderRepository(dbPool),
		ledger: postgres.NewLedgerRepository(dbPool),
		reward: postgres.NewRewardRepository(dbPool),
	}

	// Кеш баланса подключается только при заданном адресе Redis
	var redisClient *redis.Client
	var balanceCache domain.BalanceCache
	if cfg.RedisAddr != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		balanceCache = cache.NewBalanceCache(redisClient, balanceCacheTTL)
		logger.Info("balance cache enabled", zap.String("redis_addr", cfg.RedisAddr))
	}

	// Уведомления отключены без заданного вебхука
	var notify domain.Notifier = notifier.Nop{}
	if cfg.NotifyWebhookURL != "" {
		notify = notifier.NewWebhookNotifier(cfg.NotifyWebhookURL)
		logger.Info("webhook notifications enabled")
	}

	// Создание сервисов
	points := service.NewPointService(repos.ledger, postgres.NewSettlementRepository(dbPool), balanceCache)

	orderConfig := service.OrderServiceConfig{
		Currency:         cfg.Currency,
		PointTTL:         cfg.PointTTL,
		DeliveryFee:      cfg.DeliveryFee,
		FreeDeliveryOver: cfg.FreeDeliveryOver,
	}
	rewardConfig := service.RewardServiceConfig{
		MaxRetries: cfg.RewardMaxRetries,
		StaleAfter: cfg.RewardStaleAfter,
		PointTTL:   cfg.PointTTL,
	}

	svcs := &services{
		points:  points,
		rewards: service.NewRewardService(repos.reward, points, notify, logger, rewardConfig),
		pricer:  service.NewCatalogClient(cfg.CatalogAddress),
	}
	svcs.orders = service.NewOrderService(repos.order, points, svcs.pricer, notify, logger, orderConfig)

	// Создание планировщика расчётных проходов
	sched := scheduler.New(points, svcs.rewards, logger, cfg.RewardSweepInterval, cfg.SweepBatchSize)

	// Создание handlers
	hdlrs := &handlerSet{
		health: handlers.NewHealthHandler(dbPool, sched, logger),
		ops:    handlers.NewOpsHandler(sched, svcs.rewards, logger),
	}

	return &dependencies{
		repos:     repos,
		services:  svcs,
		handlers:  hdlrs,
		scheduler: sched,
		redis:     redisClient,
	}
}
