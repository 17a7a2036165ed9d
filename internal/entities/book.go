package entities

import "fmt"

// Book owns the author_book join table and the publisher_id foreign key.
type Book struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Title       string     `gorm:"index;size:512" json:"title"`
	ISBN        string     `gorm:"index;size:20" json:"isbn"`
	Cover       []byte     `gorm:"type:blob" json:"-"`
	PublisherID *uint      `gorm:"index" json:"publisher_id,omitempty"`
	Publisher   *Publisher `gorm:"foreignKey:PublisherID" json:"publisher,omitempty"`
	Authors     []*Author  `gorm:"many2many:author_book" json:"authors,omitempty"`
}

func NewBook(title, isbn string) *Book {
	return &Book{Title: title, ISBN: isbn}
}

// NewBookWithAuthors builds a book around an existing author set.
// Duplicate members (by identity) are dropped.
func NewBookWithAuthors(title, isbn string, authors []*Author) *Book {
	b := NewBook(title, isbn)
	for _, a := range authors {
		b.AddAuthor(a)
	}
	return b
}

func (Book) TableName() string {
	return "books"
}

func (b *Book) Equal(other *Book) bool {
	if b == other {
		return true
	}
	if b == nil || other == nil {
		return false
	}
	return sameKey(b.ID, other.ID)
}

func (b *Book) Hash() uint64 {
	if b == nil {
		return 0
	}
	return uint64(b.ID)
}

func (b *Book) String() string {
	if b == nil {
		return "Book<nil>"
	}
	return fmt.Sprintf("Book{ID: %d, Title: %q, ISBN: %q}", b.ID, b.Title, b.ISBN)
}

// AddAuthor adds a to the book's set. It does not touch a.Books.
func (b *Book) AddAuthor(a *Author) bool {
	var added bool
	b.Authors, added = addMember(b.Authors, a)
	return added
}

func (b *Book) RemoveAuthor(a *Author) bool {
	var removed bool
	b.Authors, removed = removeMember(b.Authors, a)
	return removed
}

func (b *Book) HasAuthor(a *Author) bool {
	return indexOf(b.Authors, a) >= 0
}

// AuthorIDs returns the keys of all persisted authors in the set.
func (b *Book) AuthorIDs() []uint {
	ids := make([]uint, 0, len(b.Authors))
	for _, a := range b.Authors {
		if a != nil && a.ID != 0 {
			ids = append(ids, a.ID)
		}
	}
	return ids
}
