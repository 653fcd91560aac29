package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/medifind/internal/domain/account"
	"github.com/yanqian/medifind/internal/domain/directory"
	"github.com/yanqian/medifind/internal/infra/booking"
	"github.com/yanqian/medifind/internal/infra/config"
	"github.com/yanqian/medifind/internal/infra/llm/gemini"
	"github.com/yanqian/medifind/internal/infra/ratelimit"
)

func provideDirectoryConfig(cfg *config.Config) directory.Config {
	return directory.Config{
		MaxHistoryTurns:  cfg.Chat.MaxHistoryTurns,
		ArticleBatchSize: cfg.Articles.BatchSize,
	}
}

func provideGeminiClient(cfg *config.Config) (*gemini.Client, error) {
	return gemini.NewClient(context.Background(), gemini.Config{
		APIKey:      cfg.LLM.APIKey,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	})
}

func provideAuthConfig(cfg *config.Config) account.Config {
	return account.Config{
		Secret:   cfg.Auth.Secret,
		TokenTTL: cfg.Auth.TokenTTL,
	}
}

func provideBookingSink(cfg *config.Config, logger *slog.Logger) (account.BookingSink, func()) {
	kafkaCfg := cfg.Booking.Kafka
	if !kafkaCfg.Enabled {
		logger.Info("booking kafka disabled, using local sink")
		return account.NewLocalBookingSink(logger), func() {}
	}
	sink := booking.NewKafkaBookingSink(kafkaCfg.Brokers, kafkaCfg.Topic, logger)
	logger.Info("booking kafka sink enabled", "brokers", kafkaCfg.Brokers, "topic", kafkaCfg.Topic)
	return sink, func() {
		if err := sink.Close(); err != nil {
			logger.Error("close booking sink", "error", err)
		}
	}
}

func provideRateLimiter(cfg *config.Config, logger *slog.Logger) (ratelimit.Limiter, func()) {
	rl := cfg.HTTP.RateLimit
	if !rl.Enabled {
		return nil, func() {}
	}
	memory := ratelimit.NewMemoryLimiter(rl.RequestsPerMinute, rl.Burst)
	if rl.Backend != config.RateLimitBackendValkey {
		return memory, func() {}
	}
	opt, err := buildValkeyOptions(rl.ValkeyAddr)
	if err != nil {
		logger.Error("invalid valkey configuration, falling back to memory limiter", "error", err)
		return memory, func() {}
	}
	client, err := valkey.NewClient(opt)
	if err != nil {
		logger.Error("failed to create valkey client, falling back to memory limiter", "error", err)
		return memory, func() {}
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Do(ctx, client.B().Ping().Build()).Error(); err != nil {
		logger.Error("valkey ping failed, falling back to memory limiter", "error", err)
		client.Close()
		return memory, func() {}
	}
	logger.Info("valkey rate limiter enabled", "addr", rl.ValkeyAddr)
	return ratelimit.NewValkeyLimiter(client, "", rl.RequestsPerMinute, rl.Burst), client.Close
}

func buildValkeyOptions(addr string) (valkey.ClientOption, error) {
	if strings.Contains(addr, "://") {
		return valkey.ParseURL(addr)
	}
	return valkey.ClientOption{InitAddress: []string{addr}}, nil
}
