package repository

import "errors"

// ErrNotFound is returned when a lookup finds nothing, e.g. loading settings
// that were never saved. It hides the driver specific error (sql.ErrNoRows,
// redis.Nil) from the service layer.
var ErrNotFound = errors.New("repository: not found")
