package entities

import "fmt"

type Publisher struct {
	ID      uint    `gorm:"primaryKey" json:"id"`
	Name    string  `gorm:"size:255" json:"name"`
	Address string  `gorm:"size:255" json:"address"`
	City    string  `gorm:"size:100" json:"city"`
	State   string  `gorm:"size:100" json:"state"`
	Zip     string  `gorm:"size:20" json:"zip"`
	Books   []*Book `gorm:"foreignKey:PublisherID" json:"books,omitempty"`
}

func NewPublisher(name, address, city, state, zip string) *Publisher {
	return &Publisher{
		Name:    name,
		Address: address,
		City:    city,
		State:   state,
		Zip:     zip,
	}
}

func (Publisher) TableName() string {
	return "publishers"
}

func (p *Publisher) Equal(other *Publisher) bool {
	if p == other {
		return true
	}
	if p == nil || other == nil {
		return false
	}
	return sameKey(p.ID, other.ID)
}

func (p *Publisher) Hash() uint64 {
	if p == nil {
		return 0
	}
	return uint64(p.ID)
}

func (p *Publisher) String() string {
	if p == nil {
		return "Publisher<nil>"
	}
	return fmt.Sprintf("Publisher{ID: %d, Name: %q, Address: %q, City: %q, State: %q, Zip: %q}",
		p.ID, p.Name, p.Address, p.City, p.State, p.Zip)
}

// AddBook adds b to the publisher's set. It does not touch b.Publisher.
func (p *Publisher) AddBook(b *Book) bool {
	var added bool
	p.Books, added = addMember(p.Books, b)
	return added
}

func (p *Publisher) RemoveBook(b *Book) bool {
	var removed bool
	p.Books, removed = removeMember(p.Books, b)
	return removed
}

func (p *Publisher) HasBook(b *Book) bool {
	return indexOf(p.Books, b) >= 0
}
