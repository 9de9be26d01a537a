package contact

import (
	"context"

	"addressbook/internal/core/domain/contact"
)

type Manager interface {
	CreateContact(ctx context.Context, d contact.Details) (contact.Contact, error)
	UpdateContact(ctx context.Context, fullName string, d contact.Details) (contact.Contact, error)
	DeleteContact(ctx context.Context, fullName string) error
	CountContacts(ctx context.Context) (int, error)
	CountByCityOrState(ctx context.Context, value string) (int, error)
	Contacts(ctx context.Context) ([]contact.Contact, error)
	SearchByCityOrState(ctx context.Context, fullName, value string) ([]contact.Contact, error)
	ViewByCityOrState(ctx context.Context, value string) ([]contact.Contact, error)
	SortByName(ctx context.Context) ([]contact.Contact, error)
	SortByCityStateOrZip(ctx context.Context, field contact.SortField) ([]contact.Contact, error)
}
