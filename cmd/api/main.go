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

	appanalytics "github.com/fk219/Send-My-Invoice/internal/application/analytics"
	"github.com/fk219/Send-My-Invoice/internal/application/billing"
	"github.com/fk219/Send-My-Invoice/internal/application/ports"
	"github.com/fk219/Send-My-Invoice/internal/application/usecase"
	"github.com/fk219/Send-My-Invoice/internal/domain/numbering"
	"github.com/fk219/Send-My-Invoice/internal/domain/repository"
	infraai "github.com/fk219/Send-My-Invoice/internal/infrastructure/ai"
	"github.com/fk219/Send-My-Invoice/internal/infrastructure/kv"
	"github.com/fk219/Send-My-Invoice/internal/infrastructure/payment"
	infrapdf "github.com/fk219/Send-My-Invoice/internal/infrastructure/pdf"
	"github.com/fk219/Send-My-Invoice/internal/infrastructure/sqlite"
	httpRouter "github.com/fk219/Send-My-Invoice/internal/interfaces/http"
	"github.com/fk219/Send-My-Invoice/pkg/config"
	"github.com/fk219/Send-My-Invoice/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()

	// Almacén clave/valor: SQLite en disco o memoria si STORAGE_PATH=:memory:
	var store repository.KVStore
	if cfg.Storage.InMemory() {
		log.Warn().Msg("almacenamiento en memoria: los datos se pierden al reiniciar")
		store = kv.NewMemoryStore()
	} else {
		db, err := sqlite.Open(ctx, cfg.Storage)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Storage.Path).Msg("abrir SQLite")
		}
		defer db.Close()
		store = sqlite.NewKVStore(db)
	}

	profileRepo := kv.NewProfileRepository(store)
	clientRepo := kv.NewClientRepository(store)
	invoiceRepo := kv.NewInvoiceRepository(store)

	var genOpts []numbering.Option
	if cfg.Numbering.SubstituteMonth {
		genOpts = append(genOpts, numbering.WithMonthSubstitution())
	}
	generator := numbering.NewGenerator(genOpts...)

	// Proveedor de IA: sin API key el caso de uso devuelve los valores originales.
	var llm ports.LLMService
	switch cfg.AI.Provider {
	case "openai":
		llm = infraai.NewOpenAIService(cfg.AI.OpenAIAPIKey, cfg.AI.OpenAIModel)
	default:
		llm = infraai.NewGeminiService(cfg.AI.GeminiAPIKey, cfg.AI.GeminiModel)
	}

	// Links de pago: Stripe Checkout si hay clave, si no links simulados.
	var payProvider billing.PaymentLinkProvider = payment.NewSimulatedLinkProvider()
	if cfg.Stripe.SecretKey != "" {
		payProvider = payment.NewStripeLinkProvider(cfg.Stripe)
	}

	invoiceUC := billing.NewInvoiceUseCase(
		invoiceRepo, clientRepo, profileRepo,
		generator, cfg.Numbering.DefaultFormat, log,
	)
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(cfg.DocsPath); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: cfg.DocsPath,
			Path:     "docs",
			Title:    "Clarity Invoices API",
		}))
	} else {
		log.Warn().Str("path", cfg.DocsPath).Msg("swagger.json no encontrado; /docs deshabilitado")
	}

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProfileUC:     usecase.NewProfileUseCase(profileRepo),
		ClientUC:      billing.NewClientUseCase(clientRepo),
		InvoiceUC:     invoiceUC,
		InvoicePDF:    billing.NewPDFUseCase(invoiceRepo, clientRepo, profileRepo, pdfGenerator),
		PaymentLinkUC: billing.NewPaymentLinkUseCase(invoiceRepo, clientRepo, payProvider, log),
		CatalogUC:     usecase.NewCatalogUseCase(),
		DashboardUC:   appanalytics.NewDashboardUseCase(invoiceRepo),
		AIUC:          usecase.NewAIUseCase(llm, log),
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
