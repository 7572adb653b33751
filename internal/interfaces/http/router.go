package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/ibeauty-api/internal/application/auth"
	"github.com/jhoicas/ibeauty-api/internal/application/entitlement"
	"github.com/jhoicas/ibeauty-api/internal/application/flow"
	"github.com/jhoicas/ibeauty-api/internal/application/product"
	"github.com/jhoicas/ibeauty-api/internal/application/session"
	"github.com/jhoicas/ibeauty-api/internal/domain/entity"
	"github.com/jhoicas/ibeauty-api/pkg/jwt"
	"github.com/jhoicas/ibeauty-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC       *auth.AuthUseCase
	Resolver     *entitlement.Resolver
	Plans        *entitlement.PlanActivationService
	Flows        *flow.Service
	Orchestrator *flow.Orchestrator
	Links        *session.LinkService
	Products     *product.UseCase
	Codec        *jwt.Codec
	Revoker      auth.TokenRevoker // nil = sin registro de revocación
	Log          *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authHandler := NewAuthHandler(deps.AuthUC, deps.Log)
	authGroup := api.Group("/auth")
	authGroup.Post("/signup", authHandler.Signup)
	authGroup.Get("/verify/:token", authHandler.Verify)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.Codec, deps.Revoker, deps.Log))

	adminOnly := RequireRole(entity.RoleAdmin)

	protected.Post("/auth/logout", authHandler.Logout)
	protected.Get("/users", adminOnly, authHandler.ListUsers)
	protected.Get("/users/:id", authHandler.GetUser)

	moduleHandler := NewModuleHandler(deps.Resolver, deps.Plans, deps.Log)
	modules := protected.Group("/modules")
	modules.Get("/", moduleHandler.ListModules)
	modules.Get("/allowed", moduleHandler.Allowed)
	modules.Get("/mine", moduleHandler.Mine)
	modules.Post("/check-access", moduleHandler.CheckAccess)

	plans := protected.Group("/plans")
	plans.Get("/", moduleHandler.ListPlans)
	plans.Post("/activate", adminOnly, moduleHandler.ActivatePlan)
	plans.Post("/payment-status", adminOnly, moduleHandler.PaymentStatus)

	flowHandler := NewFlowHandler(deps.Flows, deps.Orchestrator, deps.Log)
	flows := protected.Group("/flows")
	flows.Post("/", flowHandler.SaveFlow)
	flows.Get("/", flowHandler.ListFlows)
	flows.Get("/bundle", flowHandler.Bundle)
	flows.Get("/steps/:step", flowHandler.GetStep)
	flows.Post("/landing-page", flowHandler.SaveLanding())
	flows.Post("/questionnaire", flowHandler.SaveQuestionnaire())
	flows.Post("/capture", flowHandler.SaveCapture())
	flows.Post("/contact", flowHandler.SaveContact())
	flows.Post("/segmentation", flowHandler.SaveSegmentation())
	flows.Post("/skin-goal", flowHandler.SaveSkinGoal())
	flows.Post("/summary", flowHandler.SaveSummary())
	flows.Post("/suggest-product", flowHandler.SaveSuggestProduct())

	productHandler := NewProductHandler(deps.Products, deps.Log)
	products := protected.Group("/products")
	products.Get("/", productHandler.List)
	products.Post("/", productHandler.Create)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", productHandler.Delete)

	sessionHandler := NewSessionHandler(deps.Links, deps.Log)
	sess := protected.Group("/session")
	sess.Post("/links", sessionHandler.GenerateLink)
	sess.Get("/app-data/:token", sessionHandler.AppData)
}
