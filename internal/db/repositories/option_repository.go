package repositories

import (
	"context"

	"poll_me_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type optionRepository struct {
	repository
}

type OptionRepository interface {
	Create(request *models.Option) (*models.Option, error)
	CreateMany(requests []*models.Option) error
	Update(request *models.Option) (*models.Option, error)
	Delete(request *models.Option) error
	GetManyByPoll(pollID int64) ([]*models.Option, error)
}

func NewOptionRepository(db *pg.DB) OptionRepository {
	return &optionRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *optionRepository) Create(request *models.Option) (*models.Option, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *optionRepository) CreateMany(requests []*models.Option) error {
	if len(requests) == 0 {
		return nil
	}

	_, err := r.db.Model(&requests).Insert()
	return err
}

func (r *optionRepository) Update(request *models.Option) (*models.Option, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return request, nil
}

// Delete removes the option and its votes.
func (r *optionRepository) Delete(request *models.Option) error {
	return r.db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		return deleteOptionCascade(tx, request)
	})
}

func (r *optionRepository) GetManyByPoll(pollID int64) ([]*models.Option, error) {
	options := make([]*models.Option, 0)

	err := r.db.Model(&options).
		Where("poll_id = ?", pollID).
		OrderExpr("position ASC").
		Select()

	return options, err
}
