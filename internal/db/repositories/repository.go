package repositories

import (
	"errors"

	"github.com/go-pg/pg/v10"
)

type repository struct {
	db *pg.DB
}

// noRows maps go-pg's "no rows" error to a nil result so callers can treat a
// missing record as an ordinary outcome instead of a failure.
func noRows(err error) (bool, error) {
	if err == nil {
		return false, nil
	}
	if errors.Is(err, pg.ErrNoRows) {
		return true, nil
	}
	return false, err
}
