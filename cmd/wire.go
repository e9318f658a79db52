package main

import (
	"context"
	"fmt"
	"net/http"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awsssm "github.com/aws/aws-sdk-go-v2/service/ssm"
	"go.uber.org/zap"

	"monastery-guide/handler"
	"monastery-guide/internal/catalog"
	"monastery-guide/internal/config"
	"monastery-guide/internal/integrations/gemini"
	"monastery-guide/internal/integrations/imagesearch"
	"monastery-guide/internal/integrations/paramstore"
	"monastery-guide/internal/repository"
	"monastery-guide/internal/usecase"
)

type assistantClient interface {
	usecase.Assistant
	Initialized() bool
	Model() string
}

type app struct {
	catalog   *catalog.Catalog
	sessions  *repository.Sessions
	assistant assistantClient
	chat      *usecase.ChatService
	insights  *usecase.InsightService
	gallery   *usecase.GalleryService
	booking   *usecase.BookingService
	contact   *usecase.ContactService
}

// resolveSecrets reads missing API keys from SSM when a parameter prefix is
// configured.
func resolveSecrets(ctx context.Context, c *config.Config) error {
	if c.Params.Prefix == "" || (c.Assistant.APIKey != "" && c.ImageSearch.APIKey != "") {
		return nil
	}
	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load AWS config: %w", err)
	}
	ps, err := paramstore.New(awsssm.NewFromConfig(awsCfg))
	if err != nil {
		return fmt.Errorf("create SSM client: %w", err)
	}
	return c.ResolveSecrets(ctx, ps)
}

func newAssistant(c config.AssistantConfig) (assistantClient, error) {
	httpClient := &http.Client{Timeout: c.TimeoutDuration()}
	opts := []gemini.Option{
		gemini.WithBaseURL(c.BaseURL),
		gemini.WithModel(c.Model),
		gemini.WithHTTPClient(httpClient),
		gemini.WithAPIKey(c.APIKey),
	}
	if c.Backend == config.BackendSDK {
		return gemini.NewSDKClient(opts...)
	}
	return gemini.NewClient(opts...), nil
}

func buildApp(ctx context.Context, c *config.Config, log *zap.Logger) (*app, error) {
	if err := resolveSecrets(ctx, c); err != nil {
		// The site still serves without credentials; AI calls report
		// NOT_INITIALIZED.
		log.Warn("credentials not resolved", zap.Error(err))
	}

	assistant, err := newAssistant(c.Assistant)
	if err != nil {
		return nil, fmt.Errorf("create assistant: %w", err)
	}
	if !assistant.Initialized() {
		log.Warn("assistant has no API key; AI features disabled")
	}

	imageOpts := []imagesearch.Option{
		imagesearch.WithEndpoint(c.ImageSearch.Endpoint),
		imagesearch.WithHTTPClient(&http.Client{Timeout: c.ImageSearch.TimeoutDuration()}),
	}
	images := imagesearch.NewClient(c.ImageSearch.APIKey, c.ImageSearch.EngineID, imageOpts...)

	cat := catalog.New()
	sessions := repository.NewSessions(repository.WithTTL(c.Chat.SessionTTLDuration()))

	chat, err := usecase.NewChatService(assistant, sessions, log, c.Assistant.MaxQuestionLength)
	if err != nil {
		return nil, err
	}
	insights, err := usecase.NewInsightService(assistant, cat, repository.NewInsightCache(), log)
	if err != nil {
		return nil, err
	}
	gallery, err := usecase.NewGalleryService(images)
	if err != nil {
		return nil, err
	}
	booking, err := usecase.NewBookingService(cat, log)
	if err != nil {
		return nil, err
	}

	log.Info("application wired",
		zap.String("assistant_backend", c.Assistant.Backend),
		zap.String("model", assistant.Model()),
		zap.Bool("image_search", images.Initialized()),
	)
	return &app{
		catalog:   cat,
		sessions:  sessions,
		assistant: assistant,
		chat:      chat,
		insights:  insights,
		gallery:   gallery,
		booking:   booking,
		contact:   usecase.NewContactService(log),
	}, nil
}

func (a *app) handler(siteRoot string, log *zap.Logger) (*handler.Handler, error) {
	return handler.NewHandler(handler.Deps{
		Catalog:  a.catalog,
		Chat:     a.chat,
		Insights: a.insights,
		Gallery:  a.gallery,
		Booking:  a.booking,
		Contact:  a.contact,
		Logger:   log,
		SiteRoot: siteRoot,
	})
}
