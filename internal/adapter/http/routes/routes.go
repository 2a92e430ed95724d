package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "servicescale/docs"
	"servicescale/internal/adapter/http/handlers"
	"servicescale/internal/adapter/http/middleware"
	"servicescale/internal/adapter/persistence/repository"
	"servicescale/internal/config"
	"servicescale/internal/infrastructure/database"
	"servicescale/internal/infrastructure/enrichment"
	"servicescale/internal/infrastructure/storage"
	"servicescale/internal/usecase"
	"servicescale/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

const shutdownTimeout = 15 * time.Second

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Customers *handlers.CustomerHandler
	Pricebook *handlers.PricebookHandler
	Uploads   *handlers.UploadHandler
	Imports   *handlers.ImportHandler
	Quotes    *handlers.QuoteHandler
	Templates *handlers.TemplateHandler
	Settings  *handlers.SettingsHandler
}

// Run wires the backends selected by cfg and serves the API until ctx is
// cancelled or the listener fails.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	h, err := buildHandlers(ctx, cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           NewRouter(cfg, logger, h),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("[http][server] listening", zap.String("port", cfg.Server.Port), zap.String("record_store", cfg.RecordStore))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start the application: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("[http][server] shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	return nil
}

// NewRouter mounts middleware, swagger and the /v1 routes.
func NewRouter(cfg *config.Config, logger *zap.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	secured := v1.Group("")
	secured.Use(middleware.AuthMiddleware(cfg.JWT.SecretKey))
	if cfg.Server.RequestsPerSec > 0 {
		secured.Use(middleware.NewOwnerRateLimiter(rate.Limit(cfg.Server.RequestsPerSec), cfg.Server.Burst).Middleware())
	}
	addCustomerRoutes(secured, h.Customers)
	addPricebookRoutes(secured, h.Pricebook)
	addUploadRoutes(secured, h.Uploads)
	addImportRoutes(secured, h.Imports)
	addQuoteRoutes(secured, h.Quotes)
	addTemplateRoutes(secured, h.Templates)
	addSettingsRoutes(secured, h.Settings)

	return router
}

func buildHandlers(ctx context.Context, cfg *config.Config, logger *zap.Logger) (Handlers, error) {
	store, err := newRecordStore(ctx, cfg, logger)
	if err != nil {
		return Handlers{}, err
	}

	ruleRepo, err := newRuleConfigRepository(ctx, cfg, logger)
	if err != nil {
		return Handlers{}, err
	}

	archive, err := newUploadArchive(ctx, cfg, logger)
	if err != nil {
		return Handlers{}, err
	}

	batchIDs, err := usecase.NewSnowflakeBatchIDs(cfg.BatchNodeID)
	if err != nil {
		return Handlers{}, fmt.Errorf("failed to create batch id generator: %w", err)
	}

	var enricher interfaces.IPropertyEnricher
	if cfg.Attom.APIKey != "" {
		enricher = enrichment.NewAttomClient(cfg.Attom.BaseURL, cfg.Attom.APIKey, cfg.Attom.RequestsPerSec, http.DefaultClient, logger)
	} else {
		logger.Warn("[enrichment][wiring] ATTOM_API_KEY not set; property enrichment is disabled")
	}

	rules := usecase.NewRuleConfigStore(ruleRepo, logger)
	resolver := usecase.DefaultPropertyResolver()
	customerUseCase := usecase.NewCustomerUseCase(store, rules, resolver, logger)
	pricebookUseCase := usecase.NewPricebookUseCase(store, logger)
	templateUseCase := usecase.NewTemplateUseCase(store, logger)
	uploadUseCase := usecase.NewUploadUseCase(store, customerUseCase, pricebookUseCase, archive, logger)
	importUseCase := usecase.NewImportUseCase(customerUseCase, pricebookUseCase, uploadUseCase, archive, batchIDs, logger)
	quoteUseCase := usecase.NewQuoteUseCase(store, customerUseCase, pricebookUseCase, templateUseCase, rules, resolver, logger)
	enrichmentUseCase := usecase.NewEnrichmentUseCase(customerUseCase, enricher, logger)

	return Handlers{
		Customers: handlers.NewCustomerHandler(customerUseCase, enrichmentUseCase, uploadUseCase),
		Pricebook: handlers.NewPricebookHandler(pricebookUseCase, uploadUseCase),
		Uploads:   handlers.NewUploadHandler(uploadUseCase),
		Imports:   handlers.NewImportHandler(importUseCase),
		Quotes:    handlers.NewQuoteHandler(quoteUseCase),
		Templates: handlers.NewTemplateHandler(templateUseCase),
		Settings:  handlers.NewSettingsHandler(rules),
	}, nil
}

func newRecordStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IRecordStore, error) {
	switch cfg.RecordStore {
	case config.RecordStoreDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.AWS)
		if err != nil {
			return nil, err
		}
		logger.Info("[store][wiring] using DynamoDB record store", zap.String("table_prefix", cfg.AWS.TablePrefix))
		return repository.NewDynamoRecordStore(ddb, cfg.AWS.TablePrefix), nil
	case config.RecordStorePostgres:
		db, err := database.ConnectPostgres(ctx, cfg.Postgres)
		if err != nil {
			return nil, err
		}
		store := repository.NewPostgresRecordStore(db)
		if err := store.Migrate(ctx); err != nil {
			return nil, fmt.Errorf("failed to migrate postgres schema: %w", err)
		}
		logger.Info("[store][wiring] using PostgreSQL record store", zap.String("host", cfg.Postgres.Host))
		return store, nil
	case config.RecordStoreMemory, "":
		logger.Warn("[store][wiring] using in-memory record store; data is lost on restart")
		return repository.NewMemoryRecordStore(), nil
	}
	return nil, fmt.Errorf("unknown RECORD_STORE %q", cfg.RecordStore)
}

func newRuleConfigRepository(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IRuleConfigRepository, error) {
	if cfg.Redis.Addr == "" {
		return repository.NewMemoryRuleConfigRepository(), nil
	}
	rdb, err := database.ConnectRedis(ctx, cfg.Redis)
	if err != nil {
		return nil, err
	}
	logger.Info("[rules][wiring] persisting zone rules in Redis", zap.String("key", cfg.Redis.RulesKey))
	return repository.NewRedisRuleConfigRepository(rdb, cfg.Redis.RulesKey), nil
}

func newUploadArchive(ctx context.Context, cfg *config.Config, logger *zap.Logger) (interfaces.IUploadArchive, error) {
	if cfg.Archive.Bucket == "" {
		return nil, nil
	}
	awsCfg, err := database.NewAWSConfig(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("failed to create s3 config: %w", err)
	}
	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.UsePathStyle = cfg.AWS.S3Endpoint != ""
	})
	logger.Info("[archive][wiring] archiving uploads to S3", zap.String("bucket", cfg.Archive.Bucket))
	return storage.NewS3UploadArchive(client, cfg.Archive.Bucket, cfg.Archive.Prefix), nil
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORSMiddleware())
}
