package services

import (
	"strings"

	"farmacia/internal/domain"
	"farmacia/internal/store"
)

type AddressBook struct {
	Addresses store.Keyed[domain.Address]
	IDs       *store.IDGen
}

func NewAddressBook(addresses store.Keyed[domain.Address], ids *store.IDGen) *AddressBook {
	return &AddressBook{Addresses: addresses, IDs: ids}
}

func (b *AddressBook) Add(userKey, street, locality, note string) domain.Address {
	a := domain.Address{
		ID:       b.IDs.Next(),
		Street:   strings.TrimSpace(street),
		Locality: strings.TrimSpace(locality),
		Note:     strings.TrimSpace(note),
	}
	b.Addresses.Update(userKey, func(cur []domain.Address) []domain.Address {
		return append(cur, a)
	})
	return a
}

// RemoveAt drops the address at pos. Out of range is a no-op.
func (b *AddressBook) RemoveAt(userKey string, pos int) {
	b.Addresses.Update(userKey, func(cur []domain.Address) []domain.Address {
		return removeAt(cur, pos)
	})
}

func (b *AddressBook) List(userKey string) []domain.Address {
	out := b.Addresses.Get(userKey)
	if out == nil {
		return []domain.Address{}
	}
	return out
}

// At returns the address at pos, if there is one.
func (b *AddressBook) At(userKey string, pos int) (domain.Address, bool) {
	list := b.Addresses.Get(userKey)
	if pos < 0 || pos >= len(list) {
		return domain.Address{}, false
	}
	return list[pos], true
}
