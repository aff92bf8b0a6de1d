package repositories

import (
	"poll_me_bot/internal/db/models"

	"github.com/go-pg/pg/v10"
)

type voteRepository struct {
	repository
}

type VoteRepository interface {
	Create(request *models.Vote) (*models.Vote, error)
	Delete(request *models.Vote) error
	GetManyByOption(optionID int64) ([]*models.Vote, error)
	GetManyByOptions(optionIDs []int64) ([]*models.Vote, error)
	GetOneByOptionAndParticipant(optionID int64, participant models.Participant) (*models.Vote, error)
	GetFirstByOptionsAndParticipant(optionIDs []int64, participant models.Participant) (*models.Vote, error)
}

func NewVoteRepository(db *pg.DB) VoteRepository {
	return &voteRepository{
		repository: repository{
			db: db,
		},
	}
}

func (r *voteRepository) Create(request *models.Vote) (*models.Vote, error) {
	_, err := r.db.Model(request).Insert()
	if err != nil {
		return nil, err
	}

	return request, nil
}

func (r *voteRepository) Delete(request *models.Vote) error {
	_, err := r.db.Model(request).WherePK().Delete()
	return err
}

func (r *voteRepository) GetManyByOption(optionID int64) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	err := r.db.Model(&votes).
		Where("option_id = ?", optionID).
		OrderExpr("created_at ASC, id ASC").
		Select()

	return votes, err
}

func (r *voteRepository) GetManyByOptions(optionIDs []int64) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)

	if len(optionIDs) == 0 {
		return votes, nil
	}

	err := r.db.Model(&votes).
		Where("option_id IN (?)", pg.In(optionIDs)).
		OrderExpr("created_at ASC, id ASC").
		Select()

	return votes, err
}

func (r *voteRepository) GetOneByOptionAndParticipant(optionID int64, participant models.Participant) (*models.Vote, error) {
	vote := &models.Vote{}

	query := r.db.Model(vote).
		Where("option_id = ?", optionID)

	err := whereParticipant(query, participant).Select()

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}

	return vote, nil
}

func (r *voteRepository) GetFirstByOptionsAndParticipant(optionIDs []int64, participant models.Participant) (*models.Vote, error) {
	if len(optionIDs) == 0 {
		return nil, nil
	}

	vote := &models.Vote{}

	query := r.db.Model(vote).
		Where("option_id IN (?)", pg.In(optionIDs))

	err := whereParticipant(query, participant).
		OrderExpr("id ASC").
		Limit(1).
		Select()

	if missing, err := noRows(err); missing || err != nil {
		return nil, err
	}

	return vote, nil
}

// whereParticipant filters on whichever identity field the participant
// carries; the two are mutually exclusive by construction.
func whereParticipant(query *pg.Query, participant models.Participant) *pg.Query {
	if participant.IsExternal() {
		return query.Where("external_name = ?", participant.ExternalName())
	}
	return query.Where("member_id = ?", participant.MemberID())
}
