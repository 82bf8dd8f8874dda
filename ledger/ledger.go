// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import (
	"errors"
	"fmt"

	"github.com/studcouncil/council/models"
)

var (
	ErrPollNotFound   = errors.New("poll not found")
	ErrOptionNotFound = errors.New("option not found")
	ErrInvalidChoice  = errors.New("invalid choice")
	ErrAlreadyVoted   = errors.New("already voted for this option")
)

// Mode selects the counting policy.
type Mode string

const (
	// ModeReaction keeps a like and a dislike counter per option and lets
	// the visitor toggle between them.
	ModeReaction Mode = "reaction"
	// ModeCounter counts every click as one more vote.
	ModeCounter Mode = "counter"
)

// ParseMode validates a configured mode name.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeReaction, ModeCounter:
		return Mode(s), nil
	}
	return "", fmt.Errorf("unknown vote mode %q (want reaction or counter)", s)
}

// Choice is a visitor's current vote on one option.
type Choice int

const (
	NoVote Choice = iota
	Like
	Dislike
)

func (c Choice) String() string {
	switch c {
	case Like:
		return models.ChoiceLike
	case Dislike:
		return models.ChoiceDislike
	}
	return ""
}

// ParseChoice maps a wire choice to a Choice. The empty string is NoVote.
func ParseChoice(s string) (Choice, error) {
	switch s {
	case "":
		return NoVote, nil
	case models.ChoiceLike:
		return Like, nil
	case models.ChoiceDislike:
		return Dislike, nil
	}
	return NoVote, fmt.Errorf("%w: %q", ErrInvalidChoice, s)
}

type Options struct {
	Mode Mode
	// Strict rejects repeated votes on the same option in counter mode.
	Strict bool
}

type key struct {
	pollID int
	option int
}

// Ledger holds one visitor's polls and the choice recorded for each option.
// It is not safe for concurrent use; callers serialize access.
type Ledger struct {
	opts    Options
	polls   []models.Poll
	index   map[int]int
	records map[key]Choice
}

// New copies the seed polls so the ledger can mutate them freely.
func New(seed []models.Poll, opts Options) *Ledger {
	if opts.Mode == "" {
		opts.Mode = ModeReaction
	}

	l := &Ledger{
		opts:    opts,
		polls:   make([]models.Poll, len(seed)),
		index:   make(map[int]int, len(seed)),
		records: make(map[key]Choice),
	}
	for i, p := range seed {
		l.polls[i] = clonePoll(p)
		l.index[p.ID] = i
	}
	return l
}

func (l *Ledger) Mode() Mode {
	return l.opts.Mode
}

// CastVote applies one vote action and returns the updated poll.
func (l *Ledger) CastVote(pollID, optionIndex int, choice Choice) (models.Poll, error) {
	p, err := l.lookup(pollID, optionIndex)
	if err != nil {
		return models.Poll{}, err
	}

	k := key{pollID: pollID, option: optionIndex}
	opt := &p.Options[optionIndex]

	switch l.opts.Mode {
	case ModeCounter:
		if choice == Dislike {
			return models.Poll{}, fmt.Errorf("%w: counter mode only accepts likes", ErrInvalidChoice)
		}
		if l.opts.Strict && l.records[k] == Like {
			return models.Poll{}, ErrAlreadyVoted
		}
		opt.Votes++
		p.TotalVotes++
		l.records[k] = Like

	case ModeReaction:
		if choice != Like && choice != Dislike {
			return models.Poll{}, fmt.Errorf("%w: choose like or dislike", ErrInvalidChoice)
		}
		prev := l.records[k]
		if prev == choice {
			return clonePoll(*p), nil
		}
		switch prev {
		case Like:
			opt.Votes--
		case Dislike:
			opt.Dislikes--
		}
		if choice == Like {
			opt.Votes++
		} else {
			opt.Dislikes++
		}
		// TotalVotes stays at its seed value in this mode.
		l.records[k] = choice
	}

	return clonePoll(*p), nil
}

// Choice returns the recorded choice for an option, NoVote if none.
func (l *Ledger) Choice(pollID, optionIndex int) Choice {
	return l.records[key{pollID: pollID, option: optionIndex}]
}

// Poll returns a copy of one poll.
func (l *Ledger) Poll(pollID int) (models.Poll, error) {
	i, ok := l.index[pollID]
	if !ok {
		return models.Poll{}, ErrPollNotFound
	}
	return clonePoll(l.polls[i]), nil
}

// Polls returns copies of all polls in seed order.
func (l *Ledger) Polls() []models.Poll {
	out := make([]models.Poll, len(l.polls))
	for i, p := range l.polls {
		out[i] = clonePoll(p)
	}
	return out
}

func (l *Ledger) lookup(pollID, optionIndex int) (*models.Poll, error) {
	i, ok := l.index[pollID]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrPollNotFound, pollID)
	}
	p := &l.polls[i]
	if optionIndex < 0 || optionIndex >= len(p.Options) {
		return nil, fmt.Errorf("%w: poll %d has no option %d", ErrOptionNotFound, pollID, optionIndex)
	}
	return p, nil
}

func clonePoll(p models.Poll) models.Poll {
	p.Options = append([]models.Option(nil), p.Options...)
	return p
}
