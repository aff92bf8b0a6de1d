// Package testutil provides in-memory stand-ins for the repositories and the
// messenger, so command and sweep behavior can be tested without Postgres or
// Discord.
package testutil

import (
	"sort"
	"time"

	"poll_me_bot/internal/db/models"
	"poll_me_bot/internal/db/repositories"
)

// Store is the shared in-memory database. The repository fakes built on top
// of it mirror the SQL cascades, so deleting a channel takes its polls,
// options and votes with it.
type Store struct {
	Channels []*models.Channel
	Polls    []*models.Poll
	Options  []*models.Option
	Votes    []*models.Vote

	nextID int64
}

func NewStore() *Store {
	return &Store{}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) deleteVotesByOption(optionID int64) {
	kept := s.Votes[:0]
	for _, vote := range s.Votes {
		if vote.OptionID != optionID {
			kept = append(kept, vote)
		}
	}
	s.Votes = kept
}

func (s *Store) deleteOptionCascade(optionID int64) {
	s.deleteVotesByOption(optionID)

	kept := s.Options[:0]
	for _, option := range s.Options {
		if option.ID != optionID {
			kept = append(kept, option)
		}
	}
	s.Options = kept
}

func (s *Store) deletePollCascade(pollID int64) {
	for _, option := range s.optionsByPoll(pollID) {
		s.deleteVotesByOption(option.ID)
	}

	keptOptions := s.Options[:0]
	for _, option := range s.Options {
		if option.PollID != pollID {
			keptOptions = append(keptOptions, option)
		}
	}
	s.Options = keptOptions

	keptPolls := s.Polls[:0]
	for _, p := range s.Polls {
		if p.ID != pollID {
			keptPolls = append(keptPolls, p)
		}
	}
	s.Polls = keptPolls
}

func (s *Store) optionsByPoll(pollID int64) []*models.Option {
	options := make([]*models.Option, 0)
	for _, option := range s.Options {
		if option.PollID == pollID {
			options = append(options, option)
		}
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].Position < options[j].Position
	})
	return options
}

type channelFake struct{ store *Store }

func NewChannelRepository(store *Store) repositories.ChannelRepository {
	return &channelFake{store: store}
}

func (f *channelFake) Create(request *models.Channel) (*models.Channel, error) {
	request.ID = f.store.id()
	f.store.Channels = append(f.store.Channels, request)
	return request, nil
}

func (f *channelFake) Update(request *models.Channel) (*models.Channel, error) {
	return request, nil
}

func (f *channelFake) Delete(request *models.Channel) error {
	pollIDs := make([]int64, 0)
	for _, p := range f.store.Polls {
		if p.ChannelID == request.ID {
			pollIDs = append(pollIDs, p.ID)
		}
	}
	for _, id := range pollIDs {
		f.store.deletePollCascade(id)
	}

	kept := f.store.Channels[:0]
	for _, channel := range f.store.Channels {
		if channel.ID != request.ID {
			kept = append(kept, channel)
		}
	}
	f.store.Channels = kept
	return nil
}

func (f *channelFake) GetOneByDiscordID(discordID string) (*models.Channel, error) {
	for _, channel := range f.store.Channels {
		if channel.DiscordID == discordID {
			return channel, nil
		}
	}
	return nil, nil
}

func (f *channelFake) GetOne(channelID int64) (*models.Channel, error) {
	for _, channel := range f.store.Channels {
		if channel.ID == channelID {
			return channel, nil
		}
	}
	return nil, nil
}

func (f *channelFake) GetMany() ([]*models.Channel, error) {
	return append([]*models.Channel(nil), f.store.Channels...), nil
}

type pollFake struct{ store *Store }

func NewPollRepository(store *Store) repositories.PollRepository {
	return &pollFake{store: store}
}

func (f *pollFake) Create(request *models.Poll) (*models.Poll, error) {
	request.ID = f.store.id()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	f.store.Polls = append(f.store.Polls, request)
	return request, nil
}

func (f *pollFake) Update(request *models.Poll) (*models.Poll, error) {
	return request, nil
}

func (f *pollFake) Delete(request *models.Poll) error {
	f.store.deletePollCascade(request.ID)
	return nil
}

func (f *pollFake) GetOneByKey(key, serverID string) (*models.Poll, error) {
	for _, p := range f.store.Polls {
		if p.Key == key && p.ServerID == serverID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *pollFake) GetOneByMessageID(messageID string) (*models.Poll, error) {
	if messageID == "" {
		return nil, nil
	}
	for _, p := range f.store.Polls {
		if p.MessageID == messageID {
			return p, nil
		}
	}
	return nil, nil
}

func (f *pollFake) GetMany() ([]*models.Poll, error) {
	return append([]*models.Poll(nil), f.store.Polls...), nil
}

func (f *pollFake) GetManyByAuthor(serverID, authorID string) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)
	for _, p := range f.store.Polls {
		if p.ServerID == serverID && p.AuthorID == authorID {
			polls = append(polls, p)
		}
	}
	return polls, nil
}

func (f *pollFake) GetManyClosedBefore(cutoff time.Time) ([]*models.Poll, error) {
	polls := make([]*models.Poll, 0)
	for _, p := range f.store.Polls {
		if p.Closed && p.ClosedAt.Before(cutoff) {
			polls = append(polls, p)
		}
	}
	return polls, nil
}

func (f *pollFake) CountByServer(serverID string) (int, error) {
	count := 0
	for _, p := range f.store.Polls {
		if p.ServerID == serverID {
			count++
		}
	}
	return count, nil
}

type optionFake struct{ store *Store }

func NewOptionRepository(store *Store) repositories.OptionRepository {
	return &optionFake{store: store}
}

func (f *optionFake) Create(request *models.Option) (*models.Option, error) {
	request.ID = f.store.id()
	f.store.Options = append(f.store.Options, request)
	return request, nil
}

func (f *optionFake) CreateMany(requests []*models.Option) error {
	for _, request := range requests {
		if _, err := f.Create(request); err != nil {
			return err
		}
	}
	return nil
}

func (f *optionFake) Update(request *models.Option) (*models.Option, error) {
	return request, nil
}

func (f *optionFake) Delete(request *models.Option) error {
	f.store.deleteOptionCascade(request.ID)
	return nil
}

func (f *optionFake) GetManyByPoll(pollID int64) ([]*models.Option, error) {
	return f.store.optionsByPoll(pollID), nil
}

type voteFake struct{ store *Store }

func NewVoteRepository(store *Store) repositories.VoteRepository {
	return &voteFake{store: store}
}

func (f *voteFake) Create(request *models.Vote) (*models.Vote, error) {
	request.ID = f.store.id()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now()
	}
	f.store.Votes = append(f.store.Votes, request)
	return request, nil
}

func (f *voteFake) Delete(request *models.Vote) error {
	kept := f.store.Votes[:0]
	for _, vote := range f.store.Votes {
		if vote.ID != request.ID {
			kept = append(kept, vote)
		}
	}
	f.store.Votes = kept
	return nil
}

func (f *voteFake) GetManyByOption(optionID int64) ([]*models.Vote, error) {
	votes := make([]*models.Vote, 0)
	for _, vote := range f.store.Votes {
		if vote.OptionID == optionID {
			votes = append(votes, vote)
		}
	}
	sortVotes(votes)
	return votes, nil
}

func (f *voteFake) GetManyByOptions(optionIDs []int64) ([]*models.Vote, error) {
	wanted := make(map[int64]bool, len(optionIDs))
	for _, id := range optionIDs {
		wanted[id] = true
	}

	votes := make([]*models.Vote, 0)
	for _, vote := range f.store.Votes {
		if wanted[vote.OptionID] {
			votes = append(votes, vote)
		}
	}
	sortVotes(votes)
	return votes, nil
}

// sortVotes mirrors the repository ordering: created_at first, id as the
// tie-breaker.
func sortVotes(votes []*models.Vote) {
	sort.Slice(votes, func(i, j int) bool {
		if !votes[i].CreatedAt.Equal(votes[j].CreatedAt) {
			return votes[i].CreatedAt.Before(votes[j].CreatedAt)
		}
		return votes[i].ID < votes[j].ID
	})
}

func (f *voteFake) GetOneByOptionAndParticipant(optionID int64, participant models.Participant) (*models.Vote, error) {
	for _, vote := range f.store.Votes {
		if vote.OptionID == optionID && sameParticipant(vote, participant) {
			return vote, nil
		}
	}
	return nil, nil
}

func (f *voteFake) GetFirstByOptionsAndParticipant(optionIDs []int64, participant models.Participant) (*models.Vote, error) {
	wanted := make(map[int64]bool, len(optionIDs))
	for _, id := range optionIDs {
		wanted[id] = true
	}

	for _, vote := range f.store.Votes {
		if wanted[vote.OptionID] && sameParticipant(vote, participant) {
			return vote, nil
		}
	}
	return nil, nil
}

func sameParticipant(vote *models.Vote, participant models.Participant) bool {
	if participant.IsExternal() {
		return vote.ExternalName == participant.ExternalName()
	}
	return vote.MemberID == participant.MemberID() && vote.ExternalName == ""
}
