package mutation

// FieldError is a recoverable validation error attached to a single field.
// Field errors propagate upward by making containing records invalid; they
// never halt a reconciliation.
type FieldError struct {
	// Field is the name of the field the error applies to.
	Field string `json:"field"`

	// Message is the human-readable validation message (e.g. "can't be
	// blank", "is invalid").
	Message string `json:"message"`
}

// Validation messages shared across the engine.
const (
	// MsgBlank reports a required value that is or would become absent.
	MsgBlank = "can't be blank"
	// MsgInvalid reports a value whose shape does not fit the field.
	MsgInvalid = "is invalid"
)
