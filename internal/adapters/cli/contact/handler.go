package contact

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"addressbook/internal/adapters/cli/response"
	"addressbook/internal/core/domain/contact"
	cliErrors "addressbook/internal/platform/cli"
	"addressbook/internal/platform/logger"
	"addressbook/internal/platform/validator"
)

const sortByName = "name"

type Handler struct {
	manager  Manager
	validate validator.Validator
	render   *response.Renderer
}

func NewHandler(manager Manager, validate validator.Validator, render *response.Renderer) *Handler {
	return &Handler{
		manager:  manager,
		validate: validate,
		render:   render,
	}
}

func (h *Handler) mapDomainError(err error) error {
	var (
		validationErr *contact.ValidationError
		duplicateErr  *contact.DuplicateContactError
		notFoundErr   *contact.NotFoundError
		fieldErr      *contact.InvalidFieldError
	)

	switch {
	case errors.As(err, &validationErr):
		return cliErrors.NewBadRequest(fmt.Sprintf("Invalid %s: %s", validationErr.Field, validationErr.Reason), err)
	case errors.As(err, &duplicateErr):
		return cliErrors.NewConflict(fmt.Sprintf("Contact '%s' already exists", duplicateErr.FullName), err)
	case errors.As(err, &notFoundErr):
		return cliErrors.NewNotFound(fmt.Sprintf("Contact '%s' not found", notFoundErr.FullName), err)
	case errors.As(err, &fieldErr):
		return cliErrors.NewBadRequest(fmt.Sprintf("Cannot sort by '%s': use name, city, state or zip", fieldErr.Field), err)
	default:
		return err
	}
}

func (h *Handler) validateRequest(ctx context.Context, req any) error {
	contextLogger := logger.FromContext(ctx)

	if err := h.validate.Validate(req); err != nil {
		var validationErr validator.ValidationError
		if errors.As(err, &validationErr) {
			contextLogger.Warn("Validation failed", logger.Error(err))
			return cliErrors.NewBadRequest(validationErr.Error(), err)
		}
		contextLogger.Error("Unexpected validation error", logger.Error(err))
		return cliErrors.NewBadRequest("invalid request data", err)
	}
	return nil
}

func (h *Handler) create(ctx context.Context, req ContactRequest) (contact.Contact, error) {
	if err := h.validateRequest(ctx, req); err != nil {
		return contact.Contact{}, err
	}

	c, err := h.manager.CreateContact(ctx, req.Details())
	if err != nil {
		return contact.Contact{}, h.mapDomainError(err)
	}
	return c, nil
}

func (h *Handler) AddContact(cmd *cobra.Command, args []string) error {
	c, err := h.create(cmd.Context(), newContactRequest(args))
	if err != nil {
		return err
	}

	response.RespondLine(cmd.OutOrStdout(), "Added: %s", c)
	return nil
}

// EditContact takes the current full name followed by the eight new fields.
func (h *Handler) EditContact(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	fullName, req := args[0], newContactRequest(args[1:])

	if err := h.validateRequest(ctx, req); err != nil {
		return err
	}

	c, err := h.manager.UpdateContact(ctx, fullName, req.Details())
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondLine(cmd.OutOrStdout(), "Updated: %s", c)
	return nil
}

func (h *Handler) DeleteContact(cmd *cobra.Command, args []string) error {
	if err := h.manager.DeleteContact(cmd.Context(), args[0]); err != nil {
		return h.mapDomainError(err)
	}

	response.RespondLine(cmd.OutOrStdout(), "Deleted: %s", args[0])
	return nil
}

// CountContacts counts the whole book, or only the contacts living in the
// given city or state.
func (h *Handler) CountContacts(cmd *cobra.Command, args []string) error {
	var (
		count int
		err   error
	)
	if len(args) == 0 {
		count, err = h.manager.CountContacts(cmd.Context())
	} else {
		count, err = h.manager.CountByCityOrState(cmd.Context(), args[0])
	}
	if err != nil {
		return h.mapDomainError(err)
	}

	response.RespondLine(cmd.OutOrStdout(), "%d", count)
	return nil
}

func (h *Handler) ListContacts(cmd *cobra.Command, _ []string) error {
	return h.respondContacts(cmd, h.manager.Contacts)
}

func (h *Handler) SearchContacts(cmd *cobra.Command, args []string) error {
	return h.respondContacts(cmd, func(ctx context.Context) ([]contact.Contact, error) {
		return h.manager.SearchByCityOrState(ctx, args[0], args[1])
	})
}

func (h *Handler) ViewContacts(cmd *cobra.Command, args []string) error {
	return h.respondContacts(cmd, func(ctx context.Context) ([]contact.Contact, error) {
		return h.manager.ViewByCityOrState(ctx, args[0])
	})
}

// SortContacts reorders the book and prints the new order.
func (h *Handler) SortContacts(cmd *cobra.Command, args []string) error {
	if args[0] == sortByName {
		return h.respondContacts(cmd, h.manager.SortByName)
	}

	field, err := contact.ParseSortField(args[0])
	if err != nil {
		return h.mapDomainError(err)
	}

	return h.respondContacts(cmd, func(ctx context.Context) ([]contact.Contact, error) {
		return h.manager.SortByCityStateOrZip(ctx, field)
	})
}

func (h *Handler) respondContacts(cmd *cobra.Command, query func(ctx context.Context) ([]contact.Contact, error)) error {
	contacts, err := query(cmd.Context())
	if err != nil {
		return h.mapDomainError(err)
	}

	h.render.Contacts(cmd.OutOrStdout(), contacts)
	return nil
}

func (h *Handler) ImportContacts(cmd *cobra.Command, args []string) error {
	imported, err := h.ImportFile(cmd.Context(), args[0], cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	response.RespondLine(cmd.OutOrStdout(), "Imported %d contacts", imported)
	return nil
}

func (h *Handler) ImportFile(ctx context.Context, path string, errOut io.Writer) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, cliErrors.NewBadRequest(fmt.Sprintf("Cannot open '%s'", path), err)
	}
	defer f.Close()

	return h.Import(ctx, f, errOut)
}

// Import adds every record of a YAML document in file order. A bad record
// is reported to errOut and skipped; the rest are still imported.
func (h *Handler) Import(ctx context.Context, r io.Reader, errOut io.Writer) (int, error) {
	contextLogger := logger.FromContext(ctx)

	var req ImportRequest
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		contextLogger.Warn("Failed to decode import file", logger.Error(err))
		return 0, cliErrors.NewBadRequest("invalid import file", err)
	}

	imported := 0
	for i, record := range req.Contacts {
		if _, err := h.create(ctx, record); err != nil {
			response.RespondLine(errOut, "record %d: %s", i+1, err)
			continue
		}
		imported++
	}

	contextLogger.Info("Contacts imported",
		logger.Int("imported", imported),
		logger.Int("records", len(req.Contacts)))

	if imported < len(req.Contacts) {
		return imported, cliErrors.NewBadRequest(
			fmt.Sprintf("imported %d of %d contacts", imported, len(req.Contacts)), nil)
	}
	return imported, nil
}
