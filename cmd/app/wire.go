//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"

	"github.com/yanqian/medifind/internal/bootstrap"
	"github.com/yanqian/medifind/internal/domain/account"
	"github.com/yanqian/medifind/internal/domain/directory"
	"github.com/yanqian/medifind/internal/domain/healthtools"
	"github.com/yanqian/medifind/internal/infra/config"
	"github.com/yanqian/medifind/internal/infra/llm/gemini"
	httpiface "github.com/yanqian/medifind/internal/interface/http"
	"github.com/yanqian/medifind/pkg/logger"
)

func initializeApp() (*bootstrap.App, func(), error) {
	wire.Build(
		config.Load,
		logger.New,
		provideDirectoryConfig,
		provideGeminiClient,
		provideAuthConfig,
		provideBookingSink,
		provideRateLimiter,
		directory.NewService,
		healthtools.NewService,
		account.NewLocalAuthProvider,
		account.NewBookingService,
		wire.Bind(new(directory.Generator), new(*gemini.Client)),
		wire.Bind(new(account.AuthProvider), new(*account.LocalAuthProvider)),
		httpiface.NewHandler,
		httpiface.NewRouter,
		bootstrap.NewApp,
	)
	return nil, nil, nil
}
