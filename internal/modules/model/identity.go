package model

import "github.com/google/uuid"

// Identity is the current user for the session's duration: a stable
// process-wide value supplied by configuration, not by a login flow.
type Identity struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// DirectoryUser is one entry of the people directory used to resolve
// co-creator references and to back the picker's searchable list.
type DirectoryUser struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}
