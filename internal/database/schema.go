package database

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/mrlokans/bookshelf/internal/entities"
)

// Schema:
//
//	publishers  (id, name, address, city, state, zip)
//	authors     (id, first_name, last_name)
//	books       (id, title, isbn, cover, publisher_id -> publishers.id NULL)
//	author_book (book_id -> books.id, author_id -> authors.id), PK (book_id, author_id)
//
// References are not declared as constraints, so deletes never cascade.

// joinTables binds both sides of Author<->Book to the explicit AuthorBook model.
var joinTables = []struct {
	model any
	field string
}{
	{&entities.Book{}, "Authors"},
	{&entities.Author{}, "Books"},
}

// Models lists the tables in creation order.
func Models() []any {
	return []any{
		&entities.Publisher{},
		&entities.Author{},
		&entities.Book{},
		&entities.AuthorBook{},
	}
}

// Migrate registers the join table and creates or updates all tables.
func Migrate(db *gorm.DB) error {
	for _, jt := range joinTables {
		if err := db.SetupJoinTable(jt.model, jt.field, &entities.AuthorBook{}); err != nil {
			return fmt.Errorf("setup join table for %s: %w", jt.field, err)
		}
	}
	return db.AutoMigrate(Models()...)
}
