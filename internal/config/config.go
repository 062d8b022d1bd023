package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress     string // Адрес и порт запуска сервиса
	DatabaseURI    string // URI подключения к БД
	CatalogAddress string // Адрес каталога товаров
	LogLevel       string // Уровень логирования

	// Необязательные внешние системы
	NotifyWebhookURL string // URL вебхука уведомлений
	RedisAddr        string // Адрес Redis для кеша баланса
	AMQPURL          string // URL RabbitMQ для доменных действий

	// Расчёт заказов
	Currency         string          // Валюта сумм заказа
	DeliveryFee      decimal.Decimal // Стоимость доставки
	FreeDeliveryOver decimal.Decimal // Порог бесплатной доставки

	// Баллы и вознаграждения
	PointTTL            time.Duration // Срок жизни начисленных баллов
	RewardMaxRetries    int           // Максимум повторов события вознаграждения
	RewardStaleAfter    time.Duration // Таймаут зависшей обработки события
	RewardSweepInterval time.Duration // Интервал обработки очереди вознаграждений
	SweepBatchSize      int           // Размер партии за один проход
}

// Load загружает конфигурацию из переменных окружения и флагов
// Приоритет: env переменные > флаги > дефолтные значения
func Load() (*Config, error) {
	cfg := &Config{
		LogLevel:            "info",
		Currency:            "KRW",
		DeliveryFee:         decimal.NewFromInt(3000),
		FreeDeliveryOver:    decimal.NewFromInt(50000),
		PointTTL:            365 * 24 * time.Hour,
		RewardMaxRetries:    3,
		RewardStaleAfter:    10 * time.Minute,
		RewardSweepInterval: 30 * time.Second,
		SweepBatchSize:      100,
	}

	// Определяем флаги
	flag.StringVar(&cfg.RunAddress, "a", ":8080", "address and port to run server")
	flag.StringVar(&cfg.DatabaseURI, "d", "", "database URI")
	flag.StringVar(&cfg.CatalogAddress, "c", "", "product catalog address")
	flag.Parse()

	// Переменные окружения имеют приоритет над флагами
	if envRunAddr, ok := os.LookupEnv("RUN_ADDRESS"); ok {
		cfg.RunAddress = envRunAddr
	}

	if envDBURI, ok := os.LookupEnv("DATABASE_URI"); ok {
		cfg.DatabaseURI = envDBURI
	}

	if envCatalogAddr, ok := os.LookupEnv("CATALOG_ADDRESS"); ok {
		cfg.CatalogAddress = envCatalogAddr
	}

	if envLogLevel, ok := os.LookupEnv("LOG_LEVEL"); ok {
		cfg.LogLevel = envLogLevel
	}

	// Внешние системы подключаются только при заданном env
	if envWebhook, ok := os.LookupEnv("NOTIFY_WEBHOOK_URL"); ok {
		cfg.NotifyWebhookURL = envWebhook
	}

	if envRedis, ok := os.LookupEnv("REDIS_ADDR"); ok {
		cfg.RedisAddr = envRedis
	}

	if envAMQP, ok := os.LookupEnv("AMQP_URL"); ok {
		cfg.AMQPURL = envAMQP
	}

	if envCurrency, ok := os.LookupEnv("CURRENCY"); ok {
		cfg.Currency = envCurrency
	}

	if envFee, ok := os.LookupEnv("DELIVERY_FEE"); ok {
		if fee, err := decimal.NewFromString(envFee); err == nil && !fee.IsNegative() {
			cfg.DeliveryFee = fee
		}
	}

	if envFreeOver, ok := os.LookupEnv("FREE_DELIVERY_OVER"); ok {
		if over, err := decimal.NewFromString(envFreeOver); err == nil && !over.IsNegative() {
			cfg.FreeDeliveryOver = over
		}
	}

	if envPointTTL, ok := os.LookupEnv("POINT_TTL"); ok {
		if ttl, err := time.ParseDuration(envPointTTL); err == nil && ttl > 0 {
			cfg.PointTTL = ttl
		}
	}

	if envMaxRetries, ok := os.LookupEnv("REWARD_MAX_RETRIES"); ok {
		if retries, err := strconv.Atoi(envMaxRetries); err == nil && retries > 0 {
			cfg.RewardMaxRetries = retries
		}
	}

	if envStaleAfter, ok := os.LookupEnv("REWARD_STALE_AFTER"); ok {
		if stale, err := time.ParseDuration(envStaleAfter); err == nil && stale > 0 {
			cfg.RewardStaleAfter = stale
		}
	}

	if envSweepInterval, ok := os.LookupEnv("REWARD_SWEEP_INTERVAL"); ok {
		if interval, err := time.ParseDuration(envSweepInterval); err == nil && interval > 0 {
			cfg.RewardSweepInterval = interval
		}
	}

	if envBatchSize, ok := os.LookupEnv("SWEEP_BATCH_SIZE"); ok {
		if size, err := strconv.Atoi(envBatchSize); err == nil && size > 0 {
			cfg.SweepBatchSize = size
		}
	}

	// Валидация обязательных параметров
	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI is required (use -d flag or DATABASE_URI env)")
	}

	if cfg.CatalogAddress == "" {
		return nil, fmt.Errorf("catalog address is required (use -c flag or CATALOG_ADDRESS env)")
	}

	return cfg, nil
}
