package repositories

import (
	"context"

	"poll_me_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type channelRepository struct {
	repository
}

type ChannelRepository interface {
	Create(request *models.Channel) (*models.Channel, error)
	Update(request *models.Channel) (*models.Channel, error)
	Delete(request *models.Channel) error
	GetOneByDiscordID(discordID string) (*models.Channel, error)
	GetOne(channelID int64) (*models.Channel, error)
	GetMany() ([]*models.Channel, error)
}

func NewChannelRepository(db *pg.DB) ChannelRepository {
	return &channelRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *channelRepository) Create(request *models.Channel) (*models.Channel, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *channelRepository) Update(request *models.Channel) (*models.Channel, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return request, nil
}

// Delete removes the channel and everything it owns: its polls, their options
// and their votes, in that order.
func (r *channelRepository) Delete(request *models.Channel) error {
	return r.db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		polls := make([]*models.Poll, 0)

		err := tx.Model(&polls).
			Where("channel_id = ?", request.ID).
			Select()
		if err != nil {
			return err
		}

		for _, poll := range polls {
			if err = deletePollCascade(tx, poll); err != nil {
				return err
			}
		}

		_, err = tx.Model(request).WherePK().Delete()
		return err
	})
}

func (r *channelRepository) GetOneByDiscordID(discordID string) (*models.Channel, error) {
	channel := &models.Channel{}

	err := r.db.Model(channel).
		Where("discord_id = ?", discordID).
		Select()

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}

	return channel, nil
}

func (r *channelRepository) GetOne(channelID int64) (*models.Channel, error) {
	channel := &models.Channel{}

	err := r.db.Model(channel).
		Where("id = ?", channelID).
		Select()

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}

	return channel, nil
}

func (r *channelRepository) GetMany() ([]*models.Channel, error) {
	channels := make([]*models.Channel, 0)

	err := r.db.Model(&channels).
		Select()

	return channels, err
}
