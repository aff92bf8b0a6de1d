package repositories

import (
	"poll_me_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

// The delete cascade Channel -> Poll -> Option -> Vote is spelled out here
// instead of relying on foreign-key actions, so the order is fixed and every
// step is visible to callers and tests.

func deletePollCascade(tx *pg.Tx, poll *models.Poll) error {
	options := make([]*models.Option, 0)

	err := tx.Model(&options).
		Column("id").
		Where("poll_id = ?", poll.ID).
		Select()
	if err != nil {
		return err
	}

	if len(options) > 0 {
		ids := make([]int64, 0, len(options))
		for _, option := range options {
			ids = append(ids, option.ID)
		}

		if _, err = tx.Model(&models.Vote{}).Where("option_id IN (?)", pg.In(ids)).Delete(); err != nil {
			return err
		}

		if _, err = tx.Model(&models.Option{}).Where("poll_id = ?", poll.ID).Delete(); err != nil {
			return err
		}
	}

	_, err = tx.Model(poll).WherePK().Delete()
	return err
}

func deleteOptionCascade(tx *pg.Tx, option *models.Option) error {
	if _, err := tx.Model(&models.Vote{}).Where("option_id = ?", option.ID).Delete(); err != nil {
		return err
	}

	_, err := tx.Model(option).WherePK().Delete()
	return err
}
