package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database"
	"github.com/mrlokans/bookshelf/internal/database/repository"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Persistence gateways
	Books      repository.BookGateway
	Authors    repository.AuthorGateway
	Publishers repository.PublisherGateway

	// Database is only used by the health check and may be nil.
	Database *database.Database

	// TemplatesPath overrides the embedded templates when set.
	TemplatesPath string

	// Application info
	Version string
}

// NewRouter creates and configures the HTTP router with all endpoints.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(SecurityHeadersMiddleware())

	tmpl := template.Must(loadTemplates(cfg.TemplatesPath))
	router.SetHTMLTemplate(tmpl)

	health := NewHealthController(cfg.Database, cfg.Version, catalogTables(cfg))
	booksController := NewBooksController(cfg.Books)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// UI routes
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/books")
	})
	router.GET("/books", booksController.ListBooks)

	// Read-only API endpoints
	router.GET("/api/books", booksController.GetAllBooks)
	router.GET("/api/books/:id", booksController.GetBook)
	if cfg.Authors != nil {
		router.GET("/api/authors", listAll(cfg.Authors, "authors"))
	}
	if cfg.Publishers != nil {
		router.GET("/api/publishers", listAll(cfg.Publishers, "publishers"))
	}

	return router
}
