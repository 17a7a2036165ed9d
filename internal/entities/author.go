package entities

import "fmt"

// Author is the inverse side of the author_book many-to-many association.
// Books and Book.Authors must be kept symmetric by the caller; use
// LinkAuthorBook rather than appending to either slice directly.
type Author struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	FirstName string  `gorm:"size:255" json:"first_name"`
	LastName  string  `gorm:"size:255" json:"last_name"`
	Books     []*Book `gorm:"many2many:author_book" json:"books,omitempty"`
}

func NewAuthor(firstName, lastName string) *Author {
	return &Author{FirstName: firstName, LastName: lastName}
}

// NewAuthorWithBooks builds an author around an existing book set.
// Duplicate members (by identity) are dropped.
func NewAuthorWithBooks(firstName, lastName string, books []*Book) *Author {
	a := NewAuthor(firstName, lastName)
	for _, b := range books {
		a.AddBook(b)
	}
	return a
}

func (Author) TableName() string {
	return "authors"
}

// FullName joins first and last name for display.
func (a *Author) FullName() string {
	switch {
	case a.FirstName == "":
		return a.LastName
	case a.LastName == "":
		return a.FirstName
	}
	return a.FirstName + " " + a.LastName
}

// Equal reports identity: the same instance, or both persisted with the same key.
func (a *Author) Equal(other *Author) bool {
	if a == other {
		return true
	}
	if a == nil || other == nil {
		return false
	}
	return sameKey(a.ID, other.ID)
}

func (a *Author) Hash() uint64 {
	if a == nil {
		return 0
	}
	return uint64(a.ID)
}

func (a *Author) String() string {
	if a == nil {
		return "Author<nil>"
	}
	return fmt.Sprintf("Author{ID: %d, FirstName: %q, LastName: %q}", a.ID, a.FirstName, a.LastName)
}

// AddBook adds b to the author's set. It does not touch b.Authors.
func (a *Author) AddBook(b *Book) bool {
	var added bool
	a.Books, added = addMember(a.Books, b)
	return added
}

func (a *Author) RemoveBook(b *Book) bool {
	var removed bool
	a.Books, removed = removeMember(a.Books, b)
	return removed
}

func (a *Author) HasBook(b *Book) bool {
	return indexOf(a.Books, b) >= 0
}
