package response

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"addressbook/internal/core/domain/contact"
)

func sampleContacts(t *testing.T) []contact.Contact {
	t.Helper()

	amit, err := contact.NewContact("Amit", "Kumar", "Sector 12", "Delhi", "Delhi", "110011", "9876543210", "amit.kumar@example.com")
	require.NoError(t, err)
	rohit, err := contact.NewContact("Rohit", "Sharma", "MG Road", "Mumbai", "Maharashtra", "400001", "9988776655", "rohit.sharma@example.com")
	require.NoError(t, err)

	return []contact.Contact{amit, rohit}
}

func TestRenderer_Plain(t *testing.T) {
	var buf bytes.Buffer

	NewRenderer(false).Contacts(&buf, sampleContacts(t))

	assert.Equal(t,
		"Amit Kumar, Sector 12, Delhi, Delhi, 110011, 9876543210, amit.kumar@example.com\n"+
			"Rohit Sharma, MG Road, Mumbai, Maharashtra, 400001, 9988776655, rohit.sharma@example.com\n",
		buf.String())
}

func TestRenderer_Table(t *testing.T) {
	var buf bytes.Buffer

	NewRenderer(true).Contacts(&buf, sampleContacts(t))

	out := buf.String()
	for _, want := range []string{"NAME", "EMAIL", "Amit Kumar", "Sector 12", "Rohit Sharma", "Maharashtra", "400001"} {
		assert.Contains(t, out, want)
	}
	assert.Less(t, strings.Index(out, "Amit Kumar"), strings.Index(out, "Rohit Sharma"), "rows keep the given order")
}

func TestRenderer_Empty(t *testing.T) {
	for _, table := range []bool{false, true} {
		var buf bytes.Buffer

		NewRenderer(table).Contacts(&buf, nil)

		assert.Equal(t, "No contacts found\n", buf.String())
	}
}

func TestRespondError(t *testing.T) {
	var buf bytes.Buffer

	RespondError(&buf, errors.New("Contact 'Nobody Here' not found"))

	assert.Equal(t, "error: Contact 'Nobody Here' not found\n", buf.String())
}

func TestRespondLine(t *testing.T) {
	var buf bytes.Buffer

	RespondLine(&buf, "%d", 2)
	RespondLine(&buf, "Deleted: %s", "Amit Kumar")

	assert.Equal(t, "2\nDeleted: Amit Kumar\n", buf.String())
}

func TestRespond_KeepsPercentSigns(t *testing.T) {
	var buf bytes.Buffer

	Respond(&buf, "100% literal")
	Respond(&buf, "%s %d")

	assert.Equal(t, "100% literal\n%s %d\n", buf.String())
}
