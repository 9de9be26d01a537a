package cli

type Kind int

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad request"
	case KindNotFound:
		return "not found"
	case KindConflict:
		return "conflict"
	default:
		return "internal error"
	}
}

// Error is a failure the shell reports to the user as-is.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

func NewNotFound(message string, err error) *Error {
	return New(KindNotFound, message, err)
}

func NewBadRequest(message string, err error) *Error {
	return New(KindBadRequest, message, err)
}

func NewConflict(message string, err error) *Error {
	return New(KindConflict, message, err)
}

func NewInternal(message string, err error) *Error {
	return New(KindInternal, message, err)
}
