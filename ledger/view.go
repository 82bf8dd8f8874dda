// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ledger

import "github.com/studcouncil/council/models"

// View projects one poll for display.
func (l *Ledger) View(pollID int) (models.PollView, error) {
	p, err := l.Poll(pollID)
	if err != nil {
		return models.PollView{}, err
	}
	return l.project(p), nil
}

// Views projects every poll in seed order.
func (l *Ledger) Views() []models.PollView {
	views := make([]models.PollView, 0, len(l.polls))
	for _, p := range l.polls {
		views = append(views, l.project(p))
	}
	return views
}

func (l *Ledger) project(p models.Poll) models.PollView {
	v := models.PollView{
		ID:         p.ID,
		Question:   p.Question,
		TotalVotes: p.TotalVotes,
		Mode:       string(l.opts.Mode),
		Options:    make([]models.OptionView, len(p.Options)),
	}
	for i, opt := range p.Options {
		ov := models.OptionView{
			Index:      i,
			Text:       opt.Text,
			Votes:      opt.Votes,
			Percentage: Percentage(opt.Votes, p.TotalVotes),
			Choice:     l.Choice(p.ID, i).String(),
		}
		if l.opts.Mode == ModeReaction {
			ov.Dislikes = opt.Dislikes
			ov.LikesPercentage = Percentage(opt.Votes, opt.Votes+opt.Dislikes)
		}
		v.Options[i] = ov
	}
	return v
}

// Percentage returns part/whole*100, or 0 when whole is not positive.
func Percentage(part, whole int) float64 {
	if whole <= 0 {
		return 0
	}
	return float64(part) / float64(whole) * 100
}
