package models

import "errors"

// Store sentinels. Repositories wrap these so callers can errors.Is them.
var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)
