// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package tabs tracks which navigation section or form tab is active.
package tabs

// Navigation sections, the lower-cased labels of the header menu.
const (
	NavHome         = "home"
	NavMain         = "главная"
	NavNews         = "новости"
	NavEvents       = "мероприятия"
	NavPolls        = "голосования"
	NavAchievements = "достижения"
	NavContacts     = "контакты"
)

// NavItem is one entry of the header menu.
type NavItem struct {
	Label string
	Value string
}

// Menu lists the header menu in display order.
var Menu = []NavItem{
	{Label: "Главная", Value: NavMain},
	{Label: "Новости", Value: NavNews},
	{Label: "Мероприятия", Value: NavEvents},
	{Label: "Голосования", Value: NavPolls},
	{Label: "Достижения", Value: NavAchievements},
	{Label: "Контакты", Value: NavContacts},
}

// Selector holds one active value. Select does no validation.
type Selector struct {
	def    string
	active string
}

func NewSelector(def string) *Selector {
	return &Selector{def: def, active: def}
}

// NewNavigation starts on "home", which matches no menu entry.
func NewNavigation() *Selector {
	return NewSelector(NavHome)
}

// NewFeedbackForm starts on the feedback tab.
func NewFeedbackForm() *Selector {
	return NewSelector("feedback")
}

func (s *Selector) Select(v string) {
	s.active = v
}

func (s *Selector) Active() string {
	return s.active
}

func (s *Selector) Is(v string) bool {
	return s.active == v
}

func (s *Selector) Default() string {
	return s.def
}
