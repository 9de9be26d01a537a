package addressbook

import (
	"context"

	"addressbook/internal/core/domain/contact"
	"addressbook/internal/core/ports"
	"addressbook/internal/platform/logger"
)

// Usecase is the address book: an ordered, duplicate-free collection of
// contacts. Queries and sorts return copies; changing them never touches
// the stored sequence.
type Usecase struct {
	repo     ports.ContactRepository
	collator Collator
}

func NewUsecase(repo ports.ContactRepository, collator Collator) *Usecase {
	return &Usecase{
		repo:     repo,
		collator: collator,
	}
}

func (uc *Usecase) CreateContact(ctx context.Context, d contact.Details) (contact.Contact, error) {
	log := logger.FromContext(ctx)
	log.Debug("Creating contact", logger.String("full_name", d.FirstName+" "+d.LastName))

	c, err := contact.New(d)
	if err != nil {
		log.Warn("Invalid contact data provided", logger.Error(err))
		return contact.Contact{}, err
	}

	if err := uc.AddContact(ctx, c); err != nil {
		return contact.Contact{}, err
	}

	return c, nil
}

func (uc *Usecase) AddContact(ctx context.Context, c contact.Contact) error {
	log := logger.FromContext(ctx)

	if err := uc.repo.Save(ctx, c); err != nil {
		log.Warn("Contact not added", logger.String("full_name", c.FullName()), logger.Error(err))
		return err
	}

	log.Info("Contact added", logger.String("full_name", c.FullName()))
	return nil
}

// UpdateContact validates d and then edits like EditContact.
func (uc *Usecase) UpdateContact(ctx context.Context, fullName string, d contact.Details) (contact.Contact, error) {
	c, err := contact.New(d)
	if err != nil {
		logger.FromContext(ctx).Warn("Invalid contact data provided",
			logger.String("full_name", fullName), logger.Error(err))
		return contact.Contact{}, err
	}

	if err := uc.EditContact(ctx, fullName, c); err != nil {
		return contact.Contact{}, err
	}

	return c, nil
}

// EditContact replaces the entry named fullName with c at the same position.
// It fails with *contact.NotFoundError when no entry is named fullName, and
// with *contact.DuplicateContactError when c renames it onto another entry's
// name; the book is unchanged in both cases.
func (uc *Usecase) EditContact(ctx context.Context, fullName string, c contact.Contact) error {
	log := logger.FromContext(ctx)

	if err := uc.repo.Replace(ctx, fullName, c); err != nil {
		log.Warn("Contact not edited", logger.String("full_name", fullName), logger.Error(err))
		return err
	}

	log.Info("Contact edited",
		logger.String("full_name", fullName),
		logger.String("new_full_name", c.FullName()))
	return nil
}

func (uc *Usecase) DeleteContact(ctx context.Context, fullName string) error {
	log := logger.FromContext(ctx)

	if err := uc.repo.Delete(ctx, fullName); err != nil {
		log.Warn("Contact not deleted", logger.String("full_name", fullName), logger.Error(err))
		return err
	}

	log.Info("Contact deleted", logger.String("full_name", fullName))
	return nil
}

func (uc *Usecase) CountContacts(ctx context.Context) (int, error) {
	return uc.repo.Count(ctx)
}

func (uc *Usecase) Contacts(ctx context.Context) ([]contact.Contact, error) {
	return uc.repo.List(ctx)
}

func (uc *Usecase) SearchByCityOrState(ctx context.Context, fullName, value string) ([]contact.Contact, error) {
	logger.FromContext(ctx).Debug("Searching contacts",
		logger.String("full_name", fullName), logger.String("city_or_state", value))

	return uc.repo.Filter(ctx, func(c contact.Contact) bool {
		return c.FullName() == fullName && c.InCityOrState(value)
	})
}

func (uc *Usecase) ViewByCityOrState(ctx context.Context, value string) ([]contact.Contact, error) {
	return uc.repo.Filter(ctx, func(c contact.Contact) bool {
		return c.InCityOrState(value)
	})
}

func (uc *Usecase) CountByCityOrState(ctx context.Context, value string) (int, error) {
	contacts, err := uc.ViewByCityOrState(ctx, value)
	if err != nil {
		return 0, err
	}
	return len(contacts), nil
}

func (uc *Usecase) SortByName(ctx context.Context) ([]contact.Contact, error) {
	logger.FromContext(ctx).Debug("Sorting contacts", logger.String("by", "name"))

	return uc.repo.Sort(ctx, func(a, b contact.Contact) int {
		return uc.collator.CompareString(a.FullName(), b.FullName())
	})
}

func (uc *Usecase) SortByCityStateOrZip(ctx context.Context, field contact.SortField) ([]contact.Contact, error) {
	log := logger.FromContext(ctx)

	key, err := sortKey(field)
	if err != nil {
		log.Warn("Unsupported sort field", logger.String("field", string(field)))
		return nil, err
	}

	log.Debug("Sorting contacts", logger.String("by", string(field)))
	return uc.repo.Sort(ctx, func(a, b contact.Contact) int {
		return uc.collator.CompareString(key(a), key(b))
	})
}

func sortKey(field contact.SortField) (func(contact.Contact) string, error) {
	switch field {
	case contact.SortByCity:
		return contact.Contact.City, nil
	case contact.SortByState:
		return contact.Contact.State, nil
	case contact.SortByZip:
		return contact.Contact.Zip, nil
	default:
		return nil, &contact.InvalidFieldError{Field: string(field)}
	}
}
