package models

import "time"

// Feedback kinds, also the values of the feedback form tabs
const (
	KindFeedback   = "feedback"
	KindInitiative = "initiative"
	KindQuestion   = "question"
)

// Vote choices as they appear on the wire
const (
	ChoiceLike    = "like"
	ChoiceDislike = "dislike"
)

// Request types

// OptionIndex is a pointer so a missing field can be told apart from option 0.
type CastVoteRequest struct {
	OptionIndex *int   `json:"option_index"`
	Choice      string `json:"choice"`
}

type SelectTabRequest struct {
	Tab  string `json:"tab,omitempty"`
	Form string `json:"form,omitempty"`
}

type SubmitFeedbackRequest struct {
	Type    string `json:"type"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type NewsRequest struct {
	ID      string `json:"id,omitempty"`
	Title   string `json:"title"`
	Content string `json:"content"`
	Author  string `json:"author"`
}

// Response types

type PollListResponse struct {
	Polls []PollView `json:"polls"`
}

type CastVoteResponse struct {
	Poll PollView `json:"poll"`
}

type SessionResponse struct {
	Tab  string `json:"tab"`
	Form string `json:"form"`
}

type SubmitFeedbackResponse struct {
	ID      string `json:"id"`
	Success bool   `json:"success"`
}

type FeedbackListResponse struct {
	Feedback []Feedback `json:"feedback"`
}

type NewsListResponse struct {
	News []NewsItem `json:"news"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

// Domain types

type Poll struct {
	ID         int      `json:"id" yaml:"id"`
	Question   string   `json:"question" yaml:"question"`
	Options    []Option `json:"options" yaml:"options"`
	TotalVotes int      `json:"total_votes" yaml:"total_votes"`
}

// Votes doubles as the like count in the two-counter variant.
type Option struct {
	Text     string `json:"text" yaml:"text"`
	Votes    int    `json:"votes" yaml:"votes"`
	Dislikes int    `json:"dislikes" yaml:"dislikes"`
}

// PollView is a poll projected for one visitor, with derived percentages.
type PollView struct {
	ID         int          `json:"id"`
	Question   string       `json:"question"`
	TotalVotes int          `json:"total_votes"`
	Mode       string       `json:"mode"`
	Options    []OptionView `json:"options"`
}

type OptionView struct {
	Index           int     `json:"index"`
	Text            string  `json:"text"`
	Votes           int     `json:"votes"`
	Dislikes        int     `json:"dislikes"`
	Percentage      float64 `json:"percentage"`
	LikesPercentage float64 `json:"likes_percentage"`
	Choice          string  `json:"choice,omitempty"`
}

type Event struct {
	ID       int       `json:"id" yaml:"id"`
	Title    string    `json:"title" yaml:"title"`
	Date     string    `json:"date" yaml:"date"`
	Time     string    `json:"time" yaml:"time"`
	Location string    `json:"location" yaml:"location"`
	Kind     EventKind `json:"type" yaml:"type"`
}

type Achievement struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Date        string `json:"date" yaml:"date"`
}

type Contact struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
	Icon  string `json:"icon" yaml:"icon"`
}

type NewsItem struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"date"`
}

type Feedback struct {
	ID        string    `json:"id"`
	Kind      string    `json:"type"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	IPHash    *string   `json:"-"` // Never expose in JSON
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// IsFeedbackKind reports whether kind names one of the feedback form tabs.
func IsFeedbackKind(kind string) bool {
	switch kind {
	case KindFeedback, KindInitiative, KindQuestion:
		return true
	}
	return false
}
