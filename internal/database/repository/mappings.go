package repository

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/mrlokans/bookshelf/internal/entities"
)

type (
	AuthorGateway    = Gateway[entities.Author, uint]
	BookGateway      = Gateway[entities.Book, uint]
	PublisherGateway = Gateway[entities.Publisher, uint]
)

var (
	_ AuthorGateway    = (*Repository[entities.Author])(nil)
	_ BookGateway      = (*Repository[entities.Book])(nil)
	_ PublisherGateway = (*Repository[entities.Publisher])(nil)
)

func NewAuthorRepository(db *gorm.DB) *Repository[entities.Author] {
	return New(db, Mapping[entities.Author]{
		Entity:    "author",
		Preloads:  []string{"Books"},
		ID:        func(a *entities.Author) uint { return a.ID },
		AfterSave: saveAuthorLinks,
	})
}

func NewBookRepository(db *gorm.DB) *Repository[entities.Book] {
	return New(db, Mapping[entities.Book]{
		Entity:     "book",
		Preloads:   []string{"Authors", "Publisher"},
		ID:         func(b *entities.Book) uint { return b.ID },
		BeforeSave: bookPublisherKey,
		AfterSave:  replaceBookLinks,
	})
}

func NewPublisherRepository(db *gorm.DB) *Repository[entities.Publisher] {
	return New(db, Mapping[entities.Publisher]{
		Entity:    "publisher",
		Preloads:  []string{"Books"},
		ID:        func(p *entities.Publisher) uint { return p.ID },
		AfterSave: claimPublisherBooks,
	})
}

func bookPublisherKey(b *entities.Book) {
	if b.Publisher != nil && b.Publisher.ID != 0 {
		id := b.Publisher.ID
		b.PublisherID = &id
	}
}

// replaceBookLinks makes author_book hold exactly the persisted members of
// b.Authors. Book is the owning side, so removals are written here too.
// A nil Authors slice means the set was never loaded and leaves the rows
// alone; an empty non-nil slice clears them.
func replaceBookLinks(tx *gorm.DB, b *entities.Book) error {
	if b.Authors == nil {
		return nil
	}
	ids := b.AuthorIDs()

	stale := tx.Where("book_id = ?", b.ID)
	if len(ids) > 0 {
		stale = stale.Where("author_id NOT IN ?", ids)
	}
	if err := stale.Delete(&entities.AuthorBook{}).Error; err != nil {
		return err
	}

	return insertLinks(tx, linksForBook(b.ID, ids))
}

// saveAuthorLinks adds join rows for persisted books in a.Books. The inverse
// side never removes rows.
func saveAuthorLinks(tx *gorm.DB, a *entities.Author) error {
	var links []entities.AuthorBook
	for _, b := range a.Books {
		if b != nil && b.ID != 0 {
			links = append(links, entities.AuthorBook{BookID: b.ID, AuthorID: a.ID})
		}
	}
	return insertLinks(tx, links)
}

// claimPublisherBooks points every persisted book in p.Books at p.
func claimPublisherBooks(tx *gorm.DB, p *entities.Publisher) error {
	var ids []uint
	for _, b := range p.Books {
		if b == nil || b.ID == 0 {
			continue
		}
		id := p.ID
		b.PublisherID = &id
		ids = append(ids, b.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	return tx.Model(&entities.Book{}).Where("id IN ?", ids).Update("publisher_id", p.ID).Error
}

func linksForBook(bookID uint, authorIDs []uint) []entities.AuthorBook {
	links := make([]entities.AuthorBook, 0, len(authorIDs))
	for _, id := range authorIDs {
		links = append(links, entities.AuthorBook{BookID: bookID, AuthorID: id})
	}
	return links
}

func insertLinks(tx *gorm.DB, links []entities.AuthorBook) error {
	if len(links) == 0 {
		return nil
	}
	return tx.Clauses(clause.OnConflict{DoNothing: true}).Create(&links).Error
}
