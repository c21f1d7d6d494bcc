package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/inventario-stock/internal/application/export"
	"github.com/jhoicas/inventario-stock/internal/application/usecase"
	"github.com/jhoicas/inventario-stock/internal/infrastructure/sqlite"
	"github.com/jhoicas/inventario-stock/internal/interfaces/bridge"
	httpRouter "github.com/jhoicas/inventario-stock/internal/interfaces/http"
	"github.com/jhoicas/inventario-stock/pkg/config"
	"github.com/jhoicas/inventario-stock/pkg/logger"
)

// Variante escritorio: abre el Store en el directorio de datos del usuario
// y sirve la misma superficie de lectura solo en loopback, para la vista
// embebida del shell. El bridge en proceso (internal/interfaces/bridge) es
// el contrato para shells que enlazan este módulo directamente; con
// -export se usa aquí mismo para volcar el inventario sin abrir ventana.
func main() {
	exportPath := flag.String("export", "", "exportar el inventario a la ruta dada (.csv o .xlsx) y salir")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(cfg.App.Env, cfg.Log.Level)

	dbPath := cfg.DB.Path
	if dbPath == "" {
		dbPath, err = sqlite.DefaultPath()
		if err != nil {
			log.Fatal().Err(err).Msg("resolver ruta de datos")
		}
	}

	store, err := sqlite.Open(dbPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", dbPath).Msg("abrir Store")
	}
	defer store.Close()

	if err := store.Initialize(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("inicializar Store")
	}
	log.Info().Str("path", dbPath).Msg("Store listo")

	inventoryRepo := sqlite.NewInventoryRepository(store)
	inventoryUC := usecase.NewInventoryUseCase(inventoryRepo)

	if *exportPath != "" {
		if err := exportInventory(inventoryUC, *exportPath); err != nil {
			log.Fatal().Err(err).Str("path", *exportPath).Msg("exportar inventario")
		}
		log.Info().Str("path", *exportPath).Msg("inventario exportado")
		return
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
	})
	app.Use(recover.New())

	httpRouter.Router(app, httpRouter.RouterDeps{
		InventoryUC: inventoryUC,
		Log:         log,
	})

	go func() {
		addr := fmt.Sprintf("127.0.0.1:%d", cfg.HTTP.Port)
		if err := app.Listen(addr); err != nil {
			log.Error().Err(err).Msg("servidor local finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(shutdownCtx)
}

// exportInventory vuelca la vista completa (todas las ubicaciones) a CSV o
// XLSX según la extensión, usando el bridge sin diálogo de guardado.
func exportInventory(uc *usecase.InventoryUseCase, path string) error {
	ctx := context.Background()
	rows, err := uc.ListInventory(ctx, nil)
	if err != nil {
		return err
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		data, err := export.XLSX(rows)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	default:
		b := bridge.New(uc, nil)
		ok, err := b.SaveTextFile(path, export.CSV(rows))
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("guardado cancelado")
		}
		return nil
	}
}
