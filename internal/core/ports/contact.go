package ports

import (
	"context"

	"addressbook/internal/core/domain/contact"
)

type ContactRepository interface {
	Save(ctx context.Context, c contact.Contact) error
	Replace(ctx context.Context, fullName string, c contact.Contact) error
	Delete(ctx context.Context, fullName string) error
	List(ctx context.Context) ([]contact.Contact, error)
	Filter(ctx context.Context, match func(contact.Contact) bool) ([]contact.Contact, error)
	Sort(ctx context.Context, cmp func(a, b contact.Contact) int) ([]contact.Contact, error)
	Count(ctx context.Context) (int, error)
}
