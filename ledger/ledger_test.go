package ledger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/studcouncil/council/models"
)

func testPolls() []models.Poll {
	return []models.Poll{
		{
			ID:       1,
			Question: "Какое мероприятие провести в следующем месяце?",
			Options: []models.Option{
				{Text: "Спортивный турнир", Votes: 45, Dislikes: 5},
				{Text: "Творческий конкурс", Votes: 32, Dislikes: 3},
				{Text: "Научная конференция", Votes: 28, Dislikes: 4},
				{Text: "Концерт", Votes: 51, Dislikes: 2},
			},
			TotalVotes: 156,
		},
		{
			ID:       2,
			Question: "Улучшение условий в столовой",
			Options: []models.Option{
				{Text: "Расширить меню", Votes: 67, Dislikes: 6},
				{Text: "Увеличить время работы", Votes: 43, Dislikes: 5},
			},
			TotalVotes: 110,
		},
	}
}

func TestCounterModeSingleVote(t *testing.T) {
	l := New(testPolls(), Options{Mode: ModeCounter})

	p, err := l.CastVote(1, 0, Like)
	require.NoError(t, err)

	assert.Equal(t, 46, p.Options[0].Votes)
	assert.Equal(t, 157, p.TotalVotes)
}

func TestCounterModeRepeatsAccumulate(t *testing.T) {
	l := New(testPolls(), Options{Mode: ModeCounter})

	const n = 7
	for i := 0; i < n; i++ {
		_, err := l.CastVote(1, 3, NoVote)
		require.NoError(t, err)
	}

	p, err := l.Poll(1)
	require.NoError(t, err)
	assert.Equal(t, 51+n, p.Options[3].Votes)
	assert.Equal(t, 156+n, p.TotalVotes)
	assert.Equal(t, 45, p.Options[0].Votes, "other options untouched")
}

func TestCounterModeStrict(t *testing.T) {
	l := New(testPolls(), Options{Mode: ModeCounter, Strict: true})

	_, err := l.CastVote(2, 1, Like)
	require.NoError(t, err)

	_, err = l.CastVote(2, 1, Like)
	assert.ErrorIs(t, err, ErrAlreadyVoted)

	p, _ := l.Poll(2)
	assert.Equal(t, 44, p.Options[1].Votes)
	assert.Equal(t, 111, p.TotalVotes)

	// a different option of the same poll is still open
	_, err = l.CastVote(2, 0, Like)
	assert.NoError(t, err)
}

func TestCounterModeRejectsDislike(t *testing.T) {
	l := New(testPolls(), Options{Mode: ModeCounter})

	_, err := l.CastVote(1, 0, Dislike)
	assert.ErrorIs(t, err, ErrInvalidChoice)

	p, _ := l.Poll(1)
	assert.Equal(t, 45, p.Options[0].Votes)
}

func TestReactionModeTransitions(t *testing.T) {
	tests := []struct {
		name         string
		choices      []Choice
		wantLikes    int
		wantDislikes int
		wantChoice   Choice
	}{
		{"no action", nil, 45, 5, NoVote},
		{"like", []Choice{Like}, 46, 5, Like},
		{"dislike", []Choice{Dislike}, 45, 6, Dislike},
		{"like twice", []Choice{Like, Like}, 46, 5, Like},
		// undo the like (46 -> 45), then apply the dislike (5 -> 6)
		{"like then dislike", []Choice{Like, Dislike}, 45, 6, Dislike},
		{"dislike then like", []Choice{Dislike, Like}, 46, 5, Like},
		{"flip flop", []Choice{Like, Dislike, Like, Dislike, Dislike}, 45, 6, Dislike},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := New(testPolls(), Options{Mode: ModeReaction})
			for _, c := range tt.choices {
				_, err := l.CastVote(1, 0, c)
				require.NoError(t, err)
			}

			p, err := l.Poll(1)
			require.NoError(t, err)
			assert.Equal(t, tt.wantLikes, p.Options[0].Votes)
			assert.Equal(t, tt.wantDislikes, p.Options[0].Dislikes)
			assert.Equal(t, tt.wantChoice, l.Choice(1, 0))
			assert.Equal(t, 156, p.TotalVotes, "total stays at seed value")
		})
	}
}

func TestReactionModeNetShift(t *testing.T) {
	seed := testPolls()
	l := New(seed, Options{Mode: ModeReaction})

	sequence := []struct {
		poll, option int
		choice       Choice
	}{
		{1, 0, Like}, {1, 1, Dislike}, {1, 0, Dislike}, {2, 0, Like},
		{1, 1, Like}, {2, 0, Like}, {1, 2, Dislike}, {1, 2, Like},
	}
	for _, s := range sequence {
		_, err := l.CastVote(s.poll, s.option, s.choice)
		require.NoError(t, err)
	}

	for _, sp := range seed {
		p, err := l.Poll(sp.ID)
		require.NoError(t, err)
		for i, so := range sp.Options {
			delta := p.Options[i].Votes + p.Options[i].Dislikes - so.Votes - so.Dislikes
			if l.Choice(sp.ID, i) == NoVote {
				assert.Equal(t, 0, delta, "poll %d option %d", sp.ID, i)
			} else {
				assert.Equal(t, 1, delta, "poll %d option %d", sp.ID, i)
			}
		}
	}
}

func TestReactionModeRejectsNoVote(t *testing.T) {
	l := New(testPolls(), Options{Mode: ModeReaction})

	_, err := l.CastVote(1, 0, NoVote)
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestCastVoteUnknownIdentifiers(t *testing.T) {
	l := New(testPolls(), Options{})

	_, err := l.CastVote(99, 0, Like)
	assert.True(t, errors.Is(err, ErrPollNotFound))

	_, err = l.CastVote(1, 4, Like)
	assert.True(t, errors.Is(err, ErrOptionNotFound))

	_, err = l.CastVote(1, -1, Like)
	assert.True(t, errors.Is(err, ErrOptionNotFound))
}

func TestLedgerDoesNotShareSeed(t *testing.T) {
	seed := testPolls()
	a := New(seed, Options{Mode: ModeCounter})
	b := New(seed, Options{Mode: ModeCounter})

	_, err := a.CastVote(1, 0, Like)
	require.NoError(t, err)

	assert.Equal(t, 45, seed[0].Options[0].Votes)
	pb, _ := b.Poll(1)
	assert.Equal(t, 45, pb.Options[0].Votes)

	// returned copies are detached too
	pa, _ := a.Poll(1)
	pa.Options[0].Votes = 1000
	again, _ := a.Poll(1)
	assert.Equal(t, 46, again.Options[0].Votes)
}

func TestParseChoice(t *testing.T) {
	c, err := ParseChoice("like")
	require.NoError(t, err)
	assert.Equal(t, Like, c)

	c, err = ParseChoice("dislike")
	require.NoError(t, err)
	assert.Equal(t, Dislike, c)

	c, err = ParseChoice("")
	require.NoError(t, err)
	assert.Equal(t, NoVote, c)

	_, err = ParseChoice("love")
	assert.ErrorIs(t, err, ErrInvalidChoice)
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("counter")
	require.NoError(t, err)
	assert.Equal(t, ModeCounter, m)

	_, err = ParseMode("bmj")
	assert.Error(t, err)
}
