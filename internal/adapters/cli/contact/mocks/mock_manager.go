package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"addressbook/internal/core/domain/contact"
)

type MockManager struct {
	mock.Mock
}

// NewMockManager registers an expectations check on t's cleanup.
func NewMockManager(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockManager {
	m := &MockManager{}
	m.Mock.Test(t)

	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}

func (m *MockManager) CreateContact(ctx context.Context, d contact.Details) (contact.Contact, error) {
	args := m.Called(ctx, d)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockManager) UpdateContact(ctx context.Context, fullName string, d contact.Details) (contact.Contact, error) {
	args := m.Called(ctx, fullName, d)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockManager) DeleteContact(ctx context.Context, fullName string) error {
	return m.Called(ctx, fullName).Error(0)
}

func (m *MockManager) CountContacts(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockManager) CountByCityOrState(ctx context.Context, value string) (int, error) {
	args := m.Called(ctx, value)
	return args.Int(0), args.Error(1)
}

func (m *MockManager) Contacts(ctx context.Context) ([]contact.Contact, error) {
	args := m.Called(ctx)
	return contacts(args), args.Error(1)
}

func (m *MockManager) SearchByCityOrState(ctx context.Context, fullName, value string) ([]contact.Contact, error) {
	args := m.Called(ctx, fullName, value)
	return contacts(args), args.Error(1)
}

func (m *MockManager) ViewByCityOrState(ctx context.Context, value string) ([]contact.Contact, error) {
	args := m.Called(ctx, value)
	return contacts(args), args.Error(1)
}

func (m *MockManager) SortByName(ctx context.Context) ([]contact.Contact, error) {
	args := m.Called(ctx)
	return contacts(args), args.Error(1)
}

func (m *MockManager) SortByCityStateOrZip(ctx context.Context, field contact.SortField) ([]contact.Contact, error) {
	args := m.Called(ctx, field)
	return contacts(args), args.Error(1)
}

func contacts(args mock.Arguments) []contact.Contact {
	if v := args.Get(0); v != nil {
		return v.([]contact.Contact)
	}
	return nil
}
