package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/bootstrap"
	"github.com/mrlokans/bookshelf/internal/config"
	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/repository"
	"github.com/mrlokans/bookshelf/internal/entities"
	http_controllers "github.com/mrlokans/bookshelf/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

// App is a fully wired application: an open database, its gateways and the
// router serving them.
type App struct {
	DB         *database.Database
	Authors    *repository.Repository[entities.Author]
	Books      *repository.Repository[entities.Book]
	Publishers *repository.Repository[entities.Publisher]
	Router     *gin.Engine
	Seed       *bootstrap.Summary
}

// Build opens the database, runs the bootstrap loader when enabled and
// assembles the router. A failed bootstrap aborts startup and closes the
// database.
func Build(ctx context.Context, cfg *config.Config, version string) (*App, error) {
	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	app := &App{
		DB:         db,
		Authors:    repository.NewAuthorRepository(db.DB),
		Books:      repository.NewBookRepository(db.DB),
		Publishers: repository.NewPublisherRepository(db.DB),
	}

	if cfg.Bootstrap.Enabled {
		summary, err := bootstrap.NewLoader(app.Authors, app.Books, app.Publishers).Run(ctx)
		if err != nil {
			if cerr := db.Close(); cerr != nil {
				log.Printf("Error closing database: %v", cerr)
			}
			return nil, fmt.Errorf("bootstrap failed: %w", err)
		}
		app.Seed = summary
	} else {
		log.Printf("Bootstrap disabled, serving existing data")
	}

	app.Router = http_controllers.NewRouter(http_controllers.RouterConfig{
		Books:         app.Books,
		Authors:       app.Authors,
		Publishers:    app.Publishers,
		Database:      db,
		TemplatesPath: cfg.UI.TemplatesPath,
		Version:       version,
	})

	return app, nil
}

// Close releases the database.
func (a *App) Close() error {
	return a.DB.Close()
}

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler: router,
	}

	go func() {
		log.Printf("Starting server at %s:%d\n", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	// kill (no param) default send syscall.SIGTERM
	// kill -2 is syscall.SIGINT
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server Shutdown:", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Bookshelf v%s", version)

	app, err := Build(context.Background(), cfg, version)
	if err != nil {
		log.Fatalf("Startup failed: %v", err)
	}

	Serve(app.Router, cfg, func(ctx context.Context) {
		if err := app.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	})
}
