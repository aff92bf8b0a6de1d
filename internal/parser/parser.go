package parser

import (
	"errors"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidParameters covers every grammar violation: wrong argument count,
// a word where a number was required, a missing mode selector argument.
var ErrInvalidParameters = errors.New("invalid parameters")

// Toggles are the independently-combinable poll feature flags. Any token such
// as -mno sets every toggle whose letter it contains.
type Toggles struct {
	MultipleOptions bool
	OnlyNumbers     bool
	NewOptions      bool
	AllowExternal   bool
	Confirm         bool
}

func (t *Toggles) apply(token string) {
	if strings.ContainsRune(token, 'm') {
		t.MultipleOptions = true
	}
	if strings.ContainsRune(token, 'o') {
		t.OnlyNumbers = true
	}
	if strings.ContainsRune(token, 'n') {
		t.NewOptions = true
	}
	if strings.ContainsRune(token, 'e') {
		t.AllowExternal = true
	}
	if strings.ContainsRune(token, 'y') {
		t.Confirm = true
	}
}

// ParseIndexList turns "1,3,2" into a list of option positions.
func ParseIndexList(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	indexes := make([]int, 0, len(parts))

	for _, part := range parts {
		index, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, ErrInvalidParameters
		}
		indexes = append(indexes, index)
	}

	return indexes, nil
}

// UniqueDescending deduplicates a list of positions and sorts it in
// decreasing order, so options can be removed without shifting the positions
// still to be visited.
func UniqueDescending(indexes []int) []int {
	seen := make(map[int]bool, len(indexes))
	result := make([]int, 0, len(indexes))

	for _, index := range indexes {
		if !seen[index] {
			seen[index] = true
			result = append(result, index)
		}
	}

	sort.Sort(sort.Reverse(sort.IntSlice(result)))
	return result
}

// DayRange is the argument of the weekly flags: a starting day of the month
// and an optional end day.
type DayRange struct {
	Start  int
	End    int
	HasEnd bool
}

func ParseDayRange(value string) (DayRange, bool) {
	parts := strings.Split(value, ",")
	if len(parts) == 0 || len(parts) > 2 {
		return DayRange{}, false
	}

	start, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return DayRange{}, false
	}

	dayRange := DayRange{Start: start}

	if len(parts) == 2 {
		end, err := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil {
			return DayRange{}, false
		}
		dayRange.End = end
		dayRange.HasEnd = true
	}

	return dayRange, true
}

// CreateRequest is a validated !poll command. Tokens exclude the verb itself.
type CreateRequest struct {
	Key      string
	Question string
	Options  []string

	Weekly           bool
	WeeklyPortuguese bool
	WeeklyRange      DayRange
	WeeklyHasRange   bool

	Toggles Toggles
}

func ParseCreate(tokens []string) (*CreateRequest, error) {
	request := &CreateRequest{}
	positional := make([]string, 0, len(tokens))

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		switch {
		case token == "-weekly" || token == "-weekly_pt":
			request.Weekly = true
			request.WeeklyPortuguese = token == "-weekly_pt"

			if i+1 < len(tokens) {
				if dayRange, ok := ParseDayRange(tokens[i+1]); ok {
					request.WeeklyRange = dayRange
					request.WeeklyHasRange = true
					i++
				}
			}
		case isFlag(token):
			request.Toggles.apply(token)
		default:
			positional = append(positional, Unquote(token))
		}
	}

	if len(positional) < 2 {
		return nil, ErrInvalidParameters
	}

	request.Key = positional[0]
	request.Question = positional[1]
	request.Options = positional[2:]

	return request, nil
}

// EditMode selects what an edit command changes. The mode flags override each
// other, last one wins.
type EditMode int

const (
	EditSettings EditMode = iota
	EditQuestion
	EditAddOptions
	EditRemoveOptions
	EditLockOptions
	EditUnlockOptions
)

type EditRequest struct {
	Key      string
	Mode     EditMode
	Question string
	Options  []string
	Indexes  []int
	Toggles  Toggles
}

func ParseEdit(tokens []string) (*EditRequest, error) {
	request := &EditRequest{Mode: EditSettings}
	positional := make([]string, 0, len(tokens))

	for _, token := range tokens {
		switch {
		case token == "-add":
			request.Mode = EditAddOptions
		case token == "-rm":
			request.Mode = EditRemoveOptions
		case token == "-lock":
			request.Mode = EditLockOptions
		case token == "-unlock":
			request.Mode = EditUnlockOptions
		case isFlag(token):
			request.Toggles.apply(token)
		default:
			positional = append(positional, Unquote(token))
		}
	}

	if len(positional) < 1 {
		return nil, ErrInvalidParameters
	}

	request.Key = positional[0]
	arguments := positional[1:]

	switch request.Mode {
	case EditAddOptions:
		if len(arguments) < 1 {
			return nil, ErrInvalidParameters
		}
		request.Options = arguments
	case EditRemoveOptions, EditLockOptions, EditUnlockOptions:
		if len(arguments) != 1 {
			return nil, ErrInvalidParameters
		}

		indexes, err := ParseIndexList(arguments[0])
		if err != nil {
			return nil, err
		}
		request.Indexes = UniqueDescending(indexes)
	default:
		if len(arguments) > 1 {
			return nil, ErrInvalidParameters
		}
		if len(arguments) == 1 {
			request.Mode = EditQuestion
			request.Question = arguments[0]
		}
	}

	return request, nil
}

// VoteRequest covers !vote and !unvote. A selection is either a list of
// option positions or, for polls that allow it, a quoted write-in option.
type VoteRequest struct {
	Key      string
	Indexes  []int
	WriteIn  string
	External string
}

func ParseVote(tokens []string) (*VoteRequest, error) {
	request := &VoteRequest{}
	positional := make([]string, 0, len(tokens))
	external := false

	for i := 0; i < len(tokens); i++ {
		token := tokens[i]

		if token == "-e" {
			external = true

			if i+1 >= len(tokens) {
				return nil, ErrInvalidParameters
			}
			request.External = Unquote(tokens[i+1])
			i++
			continue
		}

		positional = append(positional, token)
	}

	if len(positional) != 2 {
		return nil, ErrInvalidParameters
	}
	if external && request.External == "" {
		return nil, ErrInvalidParameters
	}

	request.Key = Unquote(positional[0])

	selection := positional[1]
	if IsQuoted(selection) {
		request.WriteIn = Unquote(selection)
		return request, nil
	}

	// Only quoted selections are write-ins; a bare token must be an index
	// list, otherwise a typo'd vote would turn into a new option.
	indexes, err := ParseIndexList(selection)
	if err != nil {
		return nil, err
	}

	request.Indexes = indexes
	return request, nil
}

type CloseRequest struct {
	Key     string
	Indexes []int
}

func ParseClose(tokens []string) (*CloseRequest, error) {
	if len(tokens) != 2 {
		return nil, ErrInvalidParameters
	}

	indexes, err := ParseIndexList(Unquote(tokens[1]))
	if err != nil {
		return nil, err
	}

	return &CloseRequest{Key: Unquote(tokens[0]), Indexes: indexes}, nil
}

// ParseKeyOnly serves the verbs whose whole grammar is a single poll key:
// !poll_delete and !poll_refresh.
func ParseKeyOnly(tokens []string) (string, error) {
	if len(tokens) != 1 {
		return "", ErrInvalidParameters
	}
	return Unquote(tokens[0]), nil
}

// DeletePolicy is the per-channel message deletion setting.
type DeletePolicy int

const (
	KeepAll DeletePolicy = iota
	DeleteCommands
	DeleteAll
)

func ParseConfigure(tokens []string) (DeletePolicy, error) {
	if len(tokens) != 1 {
		return KeepAll, ErrInvalidParameters
	}

	switch tokens[0] {
	case "-dc":
		return DeleteCommands, nil
	case "-da":
		return DeleteAll, nil
	case "-ka":
		return KeepAll, nil
	}

	return KeepAll, ErrInvalidParameters
}

type MentionRequest struct {
	Key     string
	Index   int
	Message string
}

func ParseMention(tokens []string) (*MentionRequest, error) {
	if len(tokens) != 3 {
		return nil, ErrInvalidParameters
	}

	index, err := strconv.Atoi(Unquote(tokens[1]))
	if err != nil {
		return nil, ErrInvalidParameters
	}

	return &MentionRequest{
		Key:     Unquote(tokens[0]),
		Index:   index,
		Message: Unquote(tokens[2]),
	}, nil
}
