package contact

// SortField selects the attribute SortByCityStateOrZip orders by.
type SortField string

const (
	SortByCity  SortField = "city"
	SortByState SortField = "state"
	SortByZip   SortField = "zip"
)

func (f SortField) Valid() bool {
	switch f {
	case SortByCity, SortByState, SortByZip:
		return true
	default:
		return false
	}
}

func ParseSortField(value string) (SortField, error) {
	field := SortField(value)
	if !field.Valid() {
		return "", &InvalidFieldError{Field: value}
	}
	return field, nil
}
