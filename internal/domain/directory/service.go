package directory

import (
	"context"
	"log/slog"
	"time"

	apperrors "github.com/yanqian/medifind/pkg/errors"
	"github.com/yanqian/medifind/pkg/util"
)

const (
	defaultArticleBatch    = 6
	defaultMaxHistoryTurns = 20
)

var (
	chatConnectionError = map[Language]string{
		LanguageEnglish: "Connection error. Please try again later.",
		LanguageBangla:  "সংযোগে সমস্যা হয়েছে। অনুগ্রহ করে পরে আবার চেষ্টা করুন।",
	}
	chatEmptyAnswer = map[Language]string{
		LanguageEnglish: "I apologize, I cannot answer that right now.",
		LanguageBangla:  "দুঃখিত, আমি এই মুহূর্তে এর উত্তর দিতে পারছি না।",
	}
)

// Service is the façade the presentation layer calls. None of its operations
// return errors; failures degrade to empty results or a fallback reply.
type Service interface {
	Search(ctx context.Context, req SearchRequest, geo *GeoCoordinates) SearchResult
	Chat(ctx context.Context, req ChatRequest) ChatTurn
	Articles(ctx context.Context, lang Language) []Article
}

// Generator performs one generation round trip.
type Generator interface {
	Generate(ctx context.Context, prompt string, opts GenerateOptions) (GenerationResult, error)
}

type service struct {
	cfg       Config
	generator Generator
	logger    *slog.Logger
	now       func() time.Time
}

// NewService wires up the directory façade.
func NewService(cfg Config, generator Generator, logger *slog.Logger) Service {
	if cfg.ArticleBatchSize <= 0 {
		cfg.ArticleBatchSize = defaultArticleBatch
	}
	if cfg.MaxHistoryTurns <= 0 {
		cfg.MaxHistoryTurns = defaultMaxHistoryTurns
	}
	return &service{
		cfg:       cfg,
		generator: generator,
		logger:    logger.With("component", "directory.service"),
		now:       util.NowUTC,
	}
}

func (s *service) Search(ctx context.Context, req SearchRequest, geo *GeoCoordinates) SearchResult {
	empty := SearchResult{SearchType: req.SearchType}
	req.Language = resolveLanguage(req.Language)

	promptReq, err := SearchPromptRequest(req, geo)
	if err != nil {
		s.logger.Error("search rejected", "search_type", req.SearchType, "error", err)
		return empty
	}
	prompt, err := BuildPrompt(promptReq)
	if err != nil {
		s.logger.Error("search prompt failed", "search_type", req.SearchType, "error", err)
		return empty
	}

	gen, err := s.generator.Generate(ctx, prompt.Instruction, GenerateOptions{
		EnableWebSearch: true,
		EnableMaps:      true,
		GeoBias:         geo,
	})
	if err != nil {
		s.logger.Error("search generation failed", "search_type", req.SearchType, "code", apperrors.CodeOf(err), "error", err)
		return empty
	}

	payload := Extract(gen.RawText)
	if payload.IsEmpty() {
		s.logger.Warn("search payload missing", "search_type", req.SearchType, "reason", payload.Reason(), "error", payload.Err())
		return empty
	}

	result := Normalize(payload, gen.References, req.SearchType)
	s.logger.Info("search completed",
		"search_type", req.SearchType,
		"language", req.Language,
		"results", result.Len(),
		"grounding_refs", len(gen.References),
		"geo_bias", geo != nil,
	)
	return result
}

func (s *service) Chat(ctx context.Context, req ChatRequest) ChatTurn {
	lang := resolveLanguage(req.Language)
	prompt, err := BuildPrompt(PromptRequest{
		Kind:     KindChat,
		Language: lang,
		Query:    req.Query,
		History:  lastTurns(req.History, s.cfg.MaxHistoryTurns),
	})
	if err != nil {
		s.logger.Error("chat prompt failed", "error", err)
		return s.assistantTurn(chatConnectionError[lang])
	}

	gen, err := s.generator.Generate(ctx, prompt.Instruction, GenerateOptions{})
	if err != nil {
		s.logger.Error("chat generation failed", "code", apperrors.CodeOf(err), "error", err)
		return s.assistantTurn(chatConnectionError[lang])
	}
	if gen.RawText == "" {
		s.logger.Warn("chat answer empty")
		return s.assistantTurn(chatEmptyAnswer[lang])
	}
	s.logger.Info("chat completed", append([]any{"history_turns", len(req.History)}, gen.Usage.LogAttrs()...)...)
	return s.assistantTurn(gen.RawText)
}

func (s *service) Articles(ctx context.Context, lang Language) []Article {
	lang = resolveLanguage(lang)
	prompt, err := BuildPrompt(PromptRequest{
		Kind:         KindArticle,
		Language:     lang,
		ArticleCount: s.cfg.ArticleBatchSize,
		Today:        s.now(),
	})
	if err != nil {
		s.logger.Error("article prompt failed", "error", err)
		return []Article{}
	}

	gen, err := s.generator.Generate(ctx, prompt.Instruction, GenerateOptions{EnableWebSearch: true})
	if err != nil {
		s.logger.Error("article generation failed", "code", apperrors.CodeOf(err), "error", err)
		return []Article{}
	}

	payload := Extract(gen.RawText)
	if payload.IsEmpty() {
		s.logger.Warn("article payload missing", "reason", payload.Reason(), "error", payload.Err())
		return []Article{}
	}
	articles := NormalizeArticles(payload, s.cfg.ArticleBatchSize)
	s.logger.Info("articles generated", "language", lang, "count", len(articles))
	return articles
}

func (s *service) assistantTurn(text string) ChatTurn {
	return ChatTurn{Role: RoleAssistant, Text: text, Timestamp: s.now()}
}

func resolveLanguage(lang Language) Language {
	if lang.Valid() {
		return lang
	}
	return LanguageEnglish
}

func lastTurns(history []ChatTurn, limit int) []ChatTurn {
	if limit <= 0 || len(history) <= limit {
		return history
	}
	return history[len(history)-limit:]
}
