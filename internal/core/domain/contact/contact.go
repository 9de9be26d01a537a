package contact

import (
	"fmt"
	"regexp"
)

const (
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldState     = "state"
	FieldZip       = "zip"
	FieldPhone     = "phone"
	FieldEmail     = "email"
)

var (
	nameRegex     = regexp.MustCompile(`^[A-Z][a-zA-Z]{2,}$`)
	addressRegex  = regexp.MustCompile(`^[a-zA-Z0-9\s]{4,}$`)
	localityRegex = regexp.MustCompile(`^[a-zA-Z\s]{4,}$`)
	zipRegex      = regexp.MustCompile(`^\d{6}$`)
	phoneRegex    = regexp.MustCompile(`^\d{10}$`)
	emailRegex    = regexp.MustCompile(`^[\w.-]+@[a-zA-Z\d.-]+\.[a-zA-Z]{2,}$`)
)

type rule struct {
	field  string
	value  func(Details) string
	regex  *regexp.Regexp
	reason string
}

// rules are checked in order and the first failure is reported.
var rules = []rule{
	{FieldFirstName, func(d Details) string { return d.FirstName }, nameRegex, "must start with a capital letter followed by at least two letters"},
	{FieldLastName, func(d Details) string { return d.LastName }, nameRegex, "must start with a capital letter followed by at least two letters"},
	{FieldAddress, func(d Details) string { return d.Address }, addressRegex, "must contain only letters, digits and spaces and have at least 4 characters"},
	{FieldCity, func(d Details) string { return d.City }, localityRegex, "must contain only letters and spaces and have at least 4 characters"},
	{FieldState, func(d Details) string { return d.State }, localityRegex, "must contain only letters and spaces and have at least 4 characters"},
	{FieldZip, func(d Details) string { return d.Zip }, zipRegex, "must be exactly 6 digits"},
	{FieldPhone, func(d Details) string { return d.Phone }, phoneRegex, "must be exactly 10 digits"},
	{FieldEmail, func(d Details) string { return d.Email }, emailRegex, "must be a valid email address"},
}

// Details carries the raw fields a Contact is built from.
type Details struct {
	FirstName string
	LastName  string
	Address   string
	City      string
	State     string
	Zip       string
	Phone     string
	Email     string
}

// Contact is a validated personal record. The zero value is not a valid
// contact; use New or NewContact.
type Contact struct {
	firstName string
	lastName  string
	address   string
	city      string
	state     string
	zip       string
	phone     string
	email     string
}

func NewContact(firstName, lastName, address, city, state, zip, phone, email string) (Contact, error) {
	return New(Details{
		FirstName: firstName,
		LastName:  lastName,
		Address:   address,
		City:      city,
		State:     state,
		Zip:       zip,
		Phone:     phone,
		Email:     email,
	})
}

func New(d Details) (Contact, error) {
	if err := Validate(d); err != nil {
		return Contact{}, err
	}
	return Contact{
		firstName: d.FirstName,
		lastName:  d.LastName,
		address:   d.Address,
		city:      d.City,
		state:     d.State,
		zip:       d.Zip,
		phone:     d.Phone,
		email:     d.Email,
	}, nil
}

// Validate reports the first field of d that breaks its format rule.
func Validate(d Details) error {
	for _, r := range rules {
		if !r.regex.MatchString(r.value(d)) {
			return &ValidationError{Field: r.field, Reason: r.reason}
		}
	}
	return nil
}

func (c Contact) FirstName() string { return c.firstName }
func (c Contact) LastName() string  { return c.lastName }
func (c Contact) Address() string   { return c.address }
func (c Contact) City() string      { return c.city }
func (c Contact) State() string     { return c.state }
func (c Contact) Zip() string       { return c.zip }
func (c Contact) Phone() string     { return c.phone }
func (c Contact) Email() string     { return c.email }

func (c Contact) FullName() string {
	return c.firstName + " " + c.lastName
}

// GetID keys the contact by full name in the in-memory store.
func (c Contact) GetID() string {
	return c.FullName()
}

func (c Contact) InCityOrState(value string) bool {
	return c.city == value || c.state == value
}

func (c Contact) Details() Details {
	return Details{
		FirstName: c.firstName,
		LastName:  c.lastName,
		Address:   c.address,
		City:      c.city,
		State:     c.state,
		Zip:       c.zip,
		Phone:     c.phone,
		Email:     c.email,
	}
}

func (c Contact) String() string {
	return fmt.Sprintf("%s %s, %s, %s, %s, %s, %s, %s",
		c.firstName, c.lastName, c.address, c.city, c.state, c.zip, c.phone, c.email)
}
