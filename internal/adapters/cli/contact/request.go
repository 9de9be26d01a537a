package contact

import (
	"addressbook/internal/core/domain/contact"
)

type ContactRequest struct {
	FirstName string `yaml:"first_name" validate:"required"`
	LastName  string `yaml:"last_name" validate:"required"`
	Address   string `yaml:"address" validate:"required"`
	City      string `yaml:"city" validate:"required"`
	State     string `yaml:"state" validate:"required"`
	Zip       string `yaml:"zip" validate:"required"`
	Phone     string `yaml:"phone" validate:"required"`
	Email     string `yaml:"email" validate:"required"`
}

// newContactRequest reads the eight positional fields in display order.
func newContactRequest(args []string) ContactRequest {
	return ContactRequest{
		FirstName: args[0],
		LastName:  args[1],
		Address:   args[2],
		City:      args[3],
		State:     args[4],
		Zip:       args[5],
		Phone:     args[6],
		Email:     args[7],
	}
}

func (r ContactRequest) Details() contact.Details {
	return contact.Details{
		FirstName: r.FirstName,
		LastName:  r.LastName,
		Address:   r.Address,
		City:      r.City,
		State:     r.State,
		Zip:       r.Zip,
		Phone:     r.Phone,
		Email:     r.Email,
	}
}

type ImportRequest struct {
	Contacts []ContactRequest `yaml:"contacts"`
}
