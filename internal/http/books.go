package http

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookshelf/internal/database/repository"
)

const (
	// BookListTemplate is the view rendered for GET /books.
	BookListTemplate = "books/list"
	// BooksModelKey is the template data key holding the book slice.
	BooksModelKey = "books"
)

type BooksController struct {
	books repository.BookGateway
}

func NewBooksController(books repository.BookGateway) *BooksController {
	return &BooksController{
		books: books,
	}
}

// ListBooks renders every book with its authors and publisher.
func (controller *BooksController) ListBooks(c *gin.Context) {
	books, err := controller.books.FindAll(c.Request.Context())
	if err != nil {
		log.Printf("Internal error (list books): %v", err)
		c.String(http.StatusInternalServerError, "Error loading books")
		return
	}

	c.HTML(http.StatusOK, BookListTemplate, gin.H{
		BooksModelKey: books,
	})
}

func (controller *BooksController) GetAllBooks(c *gin.Context) {
	books, err := controller.books.FindAll(c.Request.Context())
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

func (controller *BooksController) GetBook(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	book, err := controller.books.FindByID(c.Request.Context(), id)
	if err != nil {
		respondLookupError(c, err, "book")
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

// listAll serves every entity behind gw as {"<key>": [...], "count": n}.
func listAll[T any](gw repository.Gateway[T, uint], key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := gw.FindAll(c.Request.Context())
		if err != nil {
			respondInternalError(c, err, "list "+key)
			return
		}
		c.IndentedJSON(http.StatusOK, gin.H{key: items, "count": len(items)})
	}
}
