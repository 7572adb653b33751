// @title        iBeauty API
// @version      1.0
// @description  Backend multi-tenant de onboarding: entitlement por módulo, flujos configurables y enlaces de traspaso.
// @BasePath     /
// @securityDefinitions.apikey  Bearer
// @in                          header
// @name                        Authorization
// @description                 Bearer <token>
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/jhoicas/ibeauty-api/docs"
	"github.com/jhoicas/ibeauty-api/internal/application/auth"
	"github.com/jhoicas/ibeauty-api/internal/application/entitlement"
	"github.com/jhoicas/ibeauty-api/internal/application/flow"
	"github.com/jhoicas/ibeauty-api/internal/application/product"
	"github.com/jhoicas/ibeauty-api/internal/application/session"
	"github.com/jhoicas/ibeauty-api/internal/infrastructure/mail"
	"github.com/jhoicas/ibeauty-api/internal/infrastructure/postgres"
	infraredis "github.com/jhoicas/ibeauty-api/internal/infrastructure/redis"
	httpRouter "github.com/jhoicas/ibeauty-api/internal/interfaces/http"
	"github.com/jhoicas/ibeauty-api/pkg/config"
	"github.com/jhoicas/ibeauty-api/pkg/jwt"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	codec, err := jwt.NewCodec(cfg.JWT.Secret, cfg.JWT.Issuer)
	if err != nil {
		log.Fatal().Err(err).Msg("codec JWT")
	}

	// Registro de revocación: sin REDIS_URL el logout no invalida el token antes de su expiración.
	var revoker auth.TokenRevoker
	if cfg.Redis.Enabled() {
		client, err := infraredis.NewClient(ctx, cfg.Redis.URL)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		defer client.Close()
		revoker = infraredis.NewRevocationStore(client, cfg.Redis.Prefix)
	} else {
		log.Warn().Msg("REDIS_URL vacío: registro de revocación deshabilitado")
	}

	var mailer auth.Mailer
	if sender := mail.NewSMTPSender(cfg.SMTP); sender != nil {
		mailer = sender
	} else {
		log.Warn().Msg("SMTP_HOST vacío: no se enviarán correos de verificación")
	}

	userRepo := postgres.NewUserRepository(pool)
	entitlementRepo := postgres.NewEntitlementRepository(pool)
	flowRepo := postgres.NewFlowRepository(pool)
	stepRepo := postgres.NewStepRepository(pool)
	linkRepo := postgres.NewAppLinkRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := entitlement.NewResolver(entitlementRepo, cfg.Plan.TrialPlanID)
	plans := entitlement.NewPlanActivationService(userRepo, txRunner, cfg.Plan, log)
	registry := flow.NewRegistry(stepRepo, txRunner)
	flowSvc := flow.NewService(flowRepo, registry, log)
	orchestrator := flow.NewOrchestrator(flowRepo, registry)
	links := session.NewLinkService(codec, linkRepo, resolver, orchestrator, cfg.Link, log)
	products := product.NewUseCase(productRepo, log)
	authUC := auth.NewAuthUseCase(userRepo, txRunner, codec, resolver, mailer, revoker, auth.Config{
		SessionTTL:    cfg.JWT.SessionTTL(),
		VerifyBaseURL: cfg.SMTP.VerifyBaseURL,
		FrontendURL:   cfg.App.FrontendURL,
	}, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(httpRouter.RequestLogger(log.Component("http")))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "iBeauty API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		Resolver:     resolver,
		Plans:        plans,
		Flows:        flowSvc,
		Orchestrator: orchestrator,
		Links:        links,
		Products:     products,
		Codec:        codec,
		Revoker:      revoker,
		Log:          log.Component("http"),
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
