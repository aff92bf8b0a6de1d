package repositories

import (
	"context"
	"time"

	"poll_me_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type pollRepository struct {
	repository
}

type PollRepository interface {
	Create(request *models.Poll) (*models.Poll, error)
	Update(request *models.Poll) (*models.Poll, error)
	Delete(request *models.Poll) error
	GetOneByKey(key, serverID string) (*models.Poll, error)
	GetOneByMessageID(messageID string) (*models.Poll, error)
	GetMany() ([]*models.Poll, error)
	GetManyByAuthor(serverID, authorID string) ([]*models.Poll, error)
	GetManyClosedBefore(cutoff time.Time) ([]*models.Poll, error)
	CountByServer(serverID string) (int, error)
}

func NewPollRepository(db *pg.DB) PollRepository {
	return &pollRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *pollRepository) Create(request *models.Poll) (*models.Poll, error) {
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}

	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *pollRepository) Update(request *models.Poll) (*models.Poll, error) {
	_, err := r.db.Model(request).WherePK().Update()
	if err != nil {
		return nil, err
	}

	return request, nil
}

// Delete removes the poll together with its options and their votes.
func (r *pollRepository) Delete(request *models.Poll) error {
	return r.db.RunInTransaction(context.Background(), func(tx *pg.Tx) error {
		return deletePollCascade(tx, request)
	})
}

func (r *pollRepository) GetOneByKey(key, serverID string) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Where("poll_key = ?", key).
		Where("server_id = ?", serverID).
		Select()

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}

	return poll, nil
}

func (r *pollRepository) GetOneByMessageID(messageID string) (*models.Poll, error) {
	poll := &models.Poll{}

	err := r.db.Model(poll).
		Where("message_id = ?", messageID).
		Select()

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}

	return poll, nil
}

func (r *pollRepository) GetMany() ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.Model(&polls).
		OrderExpr("created_at ASC").
		Select()

	return polls, err
}

func (r *pollRepository) GetManyByAuthor(serverID, authorID string) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.Model(&polls).
		Where("server_id = ?", serverID).
		Where("author_id = ?", authorID).
		OrderExpr("created_at ASC").
		Select()

	return polls, err
}

func (r *pollRepository) GetManyClosedBefore(cutoff time.Time) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)

	err := r.db.Model(&polls).
		Where("closed = TRUE").
		Where("closed_at < ?", cutoff).
		Select()

	return polls, err
}

func (r *pollRepository) CountByServer(serverID string) (int, error) {
	return r.db.Model(&models.Poll{}).
		Where("server_id = ?", serverID).
		Count()
}
