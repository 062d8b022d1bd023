package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"

	"github.com/feedshop/order-settlement/internal/config"
	"github.com/feedshop/order-settlement/internal/events"
)

// App представляет приложение
type App struct {
	config   *config.Config
	logger   *zap.Logger
	db       *pgxpool.Pool
	router   *chi.Mux
	deps     *dependencies
	server   *http.Server
	amqpConn *amqp.Connection
	consumer *events.Consumer
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных и миграций
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	// Инициализация зависимостей
	deps := initDependencies(cfg, dbPool, logger)

	// Потребитель доменных действий подключается только при заданном AMQP_URL
	var amqpConn *amqp.Connection
	var consumer *events.Consumer
	if cfg.AMQPURL != "" {
		amqpConn, err = amqp.Dial(cfg.AMQPURL)
		if err != nil {
			dbPool.Close()
			return nil, fmt.Errorf("failed to connect to amqp: %w", err)
		}

		ch, err := amqpConn.Channel()
		if err != nil {
			amqpConn.Close()
			dbPool.Close()
			return nil, fmt.Errorf("failed to open amqp channel: %w", err)
		}

		consumer = events.NewConsumer(ch, deps.services.rewards, logger)
	}

	// Настройка роутера
	router := setupRouter(deps, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:   cfg,
		logger:   logger,
		db:       dbPool,
		router:   router,
		deps:     deps,
		server:   server,
		amqpConn: amqpConn,
		consumer: consumer,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск планировщика расчётных проходов
	a.deps.scheduler.Start(ctx)
	a.logger.Info("scheduler started")

	// Запуск потребителя доменных действий
	if a.consumer != nil {
		if err := a.consumer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start domain action consumer: %w", err)
		}
	}

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return nil
}
