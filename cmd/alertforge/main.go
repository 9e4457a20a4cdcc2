package main

import (
	"context"
	"os"
	"time"

	"github.com/gabapcia/alertforge/internal/config"
	"github.com/gabapcia/alertforge/internal/handlers/cli"
	"github.com/gabapcia/alertforge/internal/infra/indexer/helius"
	"github.com/gabapcia/alertforge/internal/infra/notifier/telegram"
	"github.com/gabapcia/alertforge/internal/infra/storage/postgres"
	"github.com/gabapcia/alertforge/internal/infra/storage/redis"
	"github.com/gabapcia/alertforge/internal/pkg/logger"
	"github.com/gabapcia/alertforge/internal/pkg/resilience/retry"
	"github.com/gabapcia/alertforge/internal/pkg/telemetry"
	transporthttp "github.com/gabapcia/alertforge/internal/pkg/transport/http"
	"github.com/gabapcia/alertforge/internal/txmonitor"
	"github.com/gabapcia/alertforge/internal/walletregistry"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		_ = logger.Init()
		logger.Fatal(ctx, "failed to load configuration", "error", err)
	}

	shutdown := telemetry.NopShutdown
	if cfg.OTELEnabled {
		if shutdown, err = telemetry.Init(ctx, cfg.ServiceName); err != nil {
			_ = logger.Init()
			logger.Fatal(ctx, "failed to initialize telemetry", "error", err)
		}
	}

	if err := logger.Init(logger.WithLevel(cfg.LogLevel), logger.WithServiceName(cfg.ServiceName)); err != nil {
		_ = shutdown(ctx)
		os.Exit(1)
	}

	code := 0
	if err := run(ctx, cfg); err != nil {
		logger.Error(ctx, "alertforge exited with error", "error", err)
		code = 1
	}

	_ = logger.Sync()
	if err := shutdown(context.WithoutCancel(ctx)); err != nil {
		code = 1
	}
	os.Exit(code)
}

func run(ctx context.Context, cfg config.Config) error {
	logger.Info(ctx, "configuration loaded", cfg.LogFields()...)

	startup := retry.New(
		retry.WithAttempts(5),
		retry.WithDelay(2*time.Second),
		retry.WithMaxDelay(15*time.Second),
		retry.WithOnRetry(func(n uint, err error) {
			logger.Warn(ctx, "dependency not ready, retrying", "retry.attempt", n+1, "error", err)
		}),
	)

	var pool *postgres.Pool
	err := startup.Execute(ctx, func() (err error) {
		pool, err = postgres.NewPool(ctx, cfg.Database.URL)
		return err
	})
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := pool.Migrate(ctx); err != nil {
		return err
	}

	store := postgres.NewStore(pool)

	var (
		ledger  txmonitor.SignatureLedger = postgres.NewLedger(pool)
		engOpts                           = engineOptions(cfg)
	)

	if cfg.UsesRedis() {
		rdb, err := connectRedis(ctx, startup, cfg.Redis)
		if err != nil {
			return err
		}
		defer rdb.Close()

		if cfg.LedgerBackend == config.LedgerRedis {
			ledger = rdb
		}
		if cfg.PassLeaseEnabled {
			engOpts = append(engOpts, txmonitor.WithPassGuard(rdb))
		}
	}

	fetcher := helius.NewClient(cfg.Helius.APIKey,
		helius.WithBaseURL(cfg.Helius.BaseURL),
		helius.WithHTTPClient(transporthttp.NewClient(
			transporthttp.WithTimeout(cfg.Helius.Timeout),
			transporthttp.WithRetryMax(cfg.Helius.RetryMax),
		)),
	)

	var botOpts []telegram.Option
	if cfg.Telegram.ServerURL != "" {
		botOpts = append(botOpts, telegram.WithServerURL(cfg.Telegram.ServerURL))
	}
	bot, err := telegram.New(cfg.Telegram.BotToken, botOpts...)
	if err != nil {
		return err
	}

	engine := txmonitor.New(fetcher, ledger, store, store, bot, engOpts...)
	registry := walletregistry.New(store, walletregistry.WithSeeder(engine))
	bot.RegisterCommands(registry)

	return cli.Run(ctx, registry, engine, bot)
}

// redisClient is the part of the Redis adapter used by the engine.
type redisClient interface {
	txmonitor.SignatureLedger
	txmonitor.PassGuard
	Close() error
}

func connectRedis(ctx context.Context, startup retry.Retry, cfg config.RedisConfig) (redisClient, error) {
	var rdb redisClient
	err := startup.Execute(ctx, func() error {
		c, err := redis.NewClient(ctx, cfg.Addr, cfg.Username, cfg.Password, cfg.DB, redis.WithKeyPrefix(cfg.KeyPrefix))
		if err != nil {
			return err
		}
		rdb = c
		return nil
	})

	return rdb, err
}

func engineOptions(cfg config.Config) []txmonitor.Option {
	return []txmonitor.Option{
		txmonitor.WithPollInterval(cfg.PollInterval),
		txmonitor.WithWalletFetchLimit(cfg.WalletFetchLimit),
		txmonitor.WithPaymentFetchLimit(cfg.PaymentFetchLimit),
		txmonitor.WithSeedFetchLimit(cfg.SeedFetchLimit),
		txmonitor.WithPruneEvery(cfg.PruneEveryPasses),
		txmonitor.WithRetention(cfg.SignatureRetention),
		txmonitor.WithWorkers(cfg.WorkerCount),
		txmonitor.WithPaymentWallet(cfg.PaymentWallet),
		txmonitor.WithUSDCMint(cfg.USDCMint),
	}
}
