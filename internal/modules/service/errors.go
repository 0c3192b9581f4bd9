package service

import "errors"

// Service layer errors for better error handling
var (
	ErrNotFound      = errors.New("collaboration not found")
	ErrNotOwner      = errors.New("only the creator may change a collaboration's status")
	ErrUnknownStatus = errors.New("status must be Open or Closed")

	ErrToolNotFound = errors.New("tool not found")
)
