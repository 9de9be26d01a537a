package response

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"addressbook/internal/core/domain/contact"
)

const noContacts = "No contacts found"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "240", Dark: "245"})
)

// Renderer writes contacts either one rendered contact per line or, for
// terminals, as a table.
type Renderer struct {
	table bool
}

func NewRenderer(table bool) *Renderer {
	return &Renderer{table: table}
}

func (r *Renderer) Contacts(w io.Writer, contacts []contact.Contact) {
	if len(contacts) == 0 {
		Respond(w, noContacts)
		return
	}

	if !r.table {
		for _, c := range contacts {
			Respond(w, c.String())
		}
		return
	}

	rows := make([][]string, len(contacts))
	for i, c := range contacts {
		rows[i] = []string{c.FullName(), c.Address(), c.City(), c.State(), c.Zip(), c.Phone(), c.Email()}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("NAME", "ADDRESS", "CITY", "STATE", "ZIP", "PHONE", "EMAIL").
		Rows(rows...)

	Respond(w, t.String())
}

// Respond writes text verbatim followed by a newline.
func Respond(w io.Writer, text string) {
	_, _ = fmt.Fprintln(w, text)
}

func RespondLine(w io.Writer, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format+"\n", args...)
}

func RespondError(w io.Writer, err error) {
	RespondLine(w, "error: %s", err)
}
