// Package bootstrap seeds the sample catalogue before the server starts
// accepting requests.
package bootstrap

import (
	"context"
	"fmt"
	"log"

	"github.com/mrlokans/bookshelf/internal/database/repository"
	"github.com/mrlokans/bookshelf/internal/entities"
)

type samplePublisher struct {
	Name, Address, City, State, Zip string
}

type sampleTitle struct {
	FirstName, LastName string
	Title, ISBN         string
}

var defaultPublisher = samplePublisher{
	Name:    "Skye Turriff",
	Address: "123 Somewhere",
	City:    "Someplace",
	State:   "ON",
	Zip:     "A1A1A1",
}

var defaultTitles = []sampleTitle{
	{FirstName: "Eric", LastName: "Evans", Title: "Domain Driven Design", ISBN: "12345"},
	{FirstName: "Rod", LastName: "Johnson", Title: "J2EE Development without EJB", ISBN: "33444555"},
}

// Summary holds the counts reported once seeding finishes.
type Summary struct {
	Books          int64
	Authors        int64
	Publishers     int64
	PublisherBooks int  // books linked to the sample publisher
	Skipped        bool // data was already present
}

type Loader struct {
	authors    repository.AuthorGateway
	books      repository.BookGateway
	publishers repository.PublisherGateway
}

func NewLoader(authors repository.AuthorGateway, books repository.BookGateway, publishers repository.PublisherGateway) *Loader {
	return &Loader{
		authors:    authors,
		books:      books,
		publishers: publishers,
	}
}

// Run seeds one publisher and two linked author/book pairs. The writes are
// not wrapped in a single transaction: a failure part way through leaves the
// rows saved so far in place, and the error is returned to abort startup.
func (l *Loader) Run(ctx context.Context) (*Summary, error) {
	existing, err := l.publishers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count publishers: %w", err)
	}
	if existing > 0 {
		log.Printf("Bootstrap data already present (%d publishers), skipping seed", existing)
		return l.summarizeExisting(ctx)
	}

	publisher := entities.NewPublisher(
		defaultPublisher.Name,
		defaultPublisher.Address,
		defaultPublisher.City,
		defaultPublisher.State,
		defaultPublisher.Zip,
	)
	if _, err := l.publishers.Save(ctx, publisher); err != nil {
		return nil, fmt.Errorf("save publisher %q: %w", publisher.Name, err)
	}

	for _, title := range defaultTitles {
		if err := l.seedTitle(ctx, publisher, title); err != nil {
			return nil, err
		}
	}

	log.Printf("Started in Bootstrap")
	return l.summarize(ctx, len(publisher.Books))
}

func (l *Loader) seedTitle(ctx context.Context, publisher *entities.Publisher, t sampleTitle) error {
	author := entities.NewAuthor(t.FirstName, t.LastName)
	book := entities.NewBook(t.Title, t.ISBN)

	entities.LinkAuthorBook(author, book)
	entities.AssignPublisher(book, publisher)

	if _, err := l.authors.Save(ctx, author); err != nil {
		return fmt.Errorf("save author %q: %w", author.FullName(), err)
	}
	if _, err := l.books.Save(ctx, book); err != nil {
		return fmt.Errorf("save book %q: %w", book.Title, err)
	}
	if _, err := l.publishers.Save(ctx, publisher); err != nil {
		return fmt.Errorf("save publisher %q: %w", publisher.Name, err)
	}
	return nil
}

func (l *Loader) summarizeExisting(ctx context.Context) (*Summary, error) {
	publishers, err := l.publishers.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list publishers: %w", err)
	}

	linked := 0
	for _, p := range publishers {
		if p.Name == defaultPublisher.Name {
			linked = len(p.Books)
			break
		}
	}

	summary, err := l.summarize(ctx, linked)
	if err != nil {
		return nil, err
	}
	summary.Skipped = true
	return summary, nil
}

func (l *Loader) summarize(ctx context.Context, publisherBooks int) (*Summary, error) {
	books, err := l.books.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count books: %w", err)
	}
	authors, err := l.authors.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count authors: %w", err)
	}
	publishers, err := l.publishers.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count publishers: %w", err)
	}

	log.Printf("Number of Books: %d", books)
	log.Printf("Number of Authors: %d", authors)
	log.Printf("Number of Publishers: %d", publishers)
	log.Printf("Number of books assigned to publisher: %d", publisherBooks)

	return &Summary{
		Books:          books,
		Authors:        authors,
		Publishers:     publishers,
		PublisherBooks: publisherBooks,
	}, nil
}
