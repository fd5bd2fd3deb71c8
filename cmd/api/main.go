package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/rfmachado/controle-trocas/internal/application/usecase"
	"github.com/rfmachado/controle-trocas/internal/infrastructure/pdf"
	"github.com/rfmachado/controle-trocas/internal/infrastructure/planilha"
	"github.com/rfmachado/controle-trocas/internal/infrastructure/postgres"
	httpRouter "github.com/rfmachado/controle-trocas/internal/interfaces/http"
	"github.com/rfmachado/controle-trocas/pkg/config"
	"github.com/rfmachado/controle-trocas/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicação")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexão ao PostgreSQL")
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("migração do esquema")
	}

	notaRepo := postgres.NewNotaFiscalRepository(pool)
	produtoRepo := postgres.NewProdutoRepository(pool)

	notaUC := usecase.NewNotaFiscalUseCase(notaRepo)
	produtoUC := usecase.NewProdutoUseCase(produtoRepo)
	importUC := usecase.NewImportUseCase(notaRepo, produtoUC, planilha.NewReader())
	exportUC := usecase.NewExportUseCase(notaRepo, planilha.NewReportWriter(), pdf.NewRelatorioPDFWriter())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    20 * 1024 * 1024, // planilhas de importação
		ReadTimeout:  time.Second * 30,
		WriteTimeout: time.Second * 30,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		NotaFiscalUC: notaUC,
		ProdutoUC:    produtoUC,
		ImportUC:     importUC,
		ExportUC:     exportUC,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("sinal de desligamento recebido, encerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("encerramento do servidor")
	}

	log.Info().Msg("aplicação encerrada")
}
