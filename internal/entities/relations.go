package entities

// AuthorBook is a row of the author_book join table.
type AuthorBook struct {
	BookID   uint `gorm:"primaryKey"`
	AuthorID uint `gorm:"primaryKey"`
}

func (AuthorBook) TableName() string {
	return "author_book"
}

// LinkAuthorBook records the association on both sides at once.
func LinkAuthorBook(a *Author, b *Book) {
	if a == nil || b == nil {
		return
	}
	a.AddBook(b)
	b.AddAuthor(a)
}

// UnlinkAuthorBook removes the association from both sides.
func UnlinkAuthorBook(a *Author, b *Book) {
	if a == nil || b == nil {
		return
	}
	a.RemoveBook(b)
	b.RemoveAuthor(a)
}

// AssignPublisher points b at p and adds b to p's set, detaching it from
// any previous publisher. A nil p clears the reference.
func AssignPublisher(b *Book, p *Publisher) {
	if b == nil {
		return
	}
	if prev := b.Publisher; prev != nil && !prev.Equal(p) {
		prev.RemoveBook(b)
	}
	b.Publisher = p
	if p == nil {
		b.PublisherID = nil
		return
	}
	p.AddBook(b)
	if p.ID != 0 {
		id := p.ID
		b.PublisherID = &id
	}
}

// sameKey treats unassigned keys as distinct from everything.
func sameKey(a, b uint) bool {
	return a != 0 && a == b
}

type member[E any] interface {
	comparable
	Equal(E) bool
}

func indexOf[E member[E]](set []E, e E) int {
	for i, m := range set {
		if m.Equal(e) {
			return i
		}
	}
	return -1
}

func addMember[E member[E]](set []E, e E) ([]E, bool) {
	var zero E
	if e == zero || indexOf(set, e) >= 0 {
		return set, false
	}
	return append(set, e), true
}

func removeMember[E member[E]](set []E, e E) ([]E, bool) {
	i := indexOf(set, e)
	if i < 0 {
		return set, false
	}
	return append(set[:i], set[i+1:]...), true
}
