package memory

import (
	"context"
	"errors"

	"addressbook/internal/core/domain/contact"
	memoryPlatform "addressbook/internal/platform/repository/memory"
)

type Repository struct {
	*memoryPlatform.Repository[contact.Contact]
}

func NewRepository() *Repository {
	return &Repository{
		Repository: memoryPlatform.New[contact.Contact](),
	}
}

func (r *Repository) Save(ctx context.Context, c contact.Contact) error {
	err := r.Repository.Save(ctx, c)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrAlreadyExists) {
			return &contact.DuplicateContactError{FullName: c.FullName()}
		}
		return err
	}
	return nil
}

func (r *Repository) Replace(ctx context.Context, fullName string, c contact.Contact) error {
	err := r.Repository.Replace(ctx, fullName, c)
	if err != nil {
		switch {
		case errors.Is(err, memoryPlatform.ErrNotFound):
			return &contact.NotFoundError{FullName: fullName, Operation: "edit"}
		case errors.Is(err, memoryPlatform.ErrAlreadyExists):
			return &contact.DuplicateContactError{FullName: c.FullName()}
		}
		return err
	}
	return nil
}

func (r *Repository) Delete(ctx context.Context, fullName string) error {
	err := r.Repository.Delete(ctx, fullName)
	if err != nil {
		if errors.Is(err, memoryPlatform.ErrNotFound) {
			return &contact.NotFoundError{FullName: fullName, Operation: "delete"}
		}
		return err
	}
	return nil
}
