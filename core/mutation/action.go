package mutation

// Action represents the persistence verdict for a mutation record.
type Action string

const (
	// ActionNone marks a no-op record (no old entity, no new value).
	ActionNone Action = "none"
	// ActionInsert creates a new entity.
	ActionInsert Action = "insert"
	// ActionUpdate modifies an existing entity.
	ActionUpdate Action = "update"
	// ActionDelete removes an existing entity.
	ActionDelete Action = "delete"
)
