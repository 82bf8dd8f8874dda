// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/studcouncil/council/models"
	"github.com/studcouncil/council/tabs"
)

//go:embed templates/*.html
var templateFS embed.FS

// Data is everything one page render needs.
type Data struct {
	Tab          string
	Form         string
	Mode         string
	Polls        []models.PollView
	Events       []models.Event
	Achievements []models.Achievement
	Contacts     []models.Contact
	News         []models.NewsItem
	// Confirmation is shown above the feedback form after a submit.
	Confirmation string
}

// FeedbackTab describes one feedback form tab.
type FeedbackTab struct {
	Kind        string
	Label       string
	Icon        string
	Fields      []Field
	Placeholder string
	Submit      string
}

type Field struct {
	Name        string
	Type        string
	Placeholder string
}

var feedbackTabs = []FeedbackTab{
	{
		Kind: models.KindFeedback, Label: "Отзыв", Icon: "MessageCircle",
		Fields: []Field{
			{Name: "name", Type: "text", Placeholder: "Ваше имя"},
			{Name: "email", Type: "email", Placeholder: "Email (необязательно)"},
		},
		Placeholder: "Расскажите, что можно улучшить в работе совета или учебного процесса...",
		Submit:      "Отправить отзыв",
	},
	{
		Kind: models.KindInitiative, Label: "Инициатива", Icon: "Lightbulb",
		Fields: []Field{
			{Name: "title", Type: "text", Placeholder: "Название инициативы"},
			{Name: "name", Type: "text", Placeholder: "Ваше имя"},
		},
		Placeholder: "Опишите вашу идею и как она улучшит жизнь студентов...",
		Submit:      "Предложить инициативу",
	},
	{
		Kind: models.KindQuestion, Label: "Вопрос", Icon: "HelpCircle",
		Fields: []Field{
			{Name: "name", Type: "text", Placeholder: "Ваше имя"},
			{Name: "email", Type: "email", Placeholder: "Email для ответа"},
		},
		Placeholder: "Задайте ваш вопрос...",
		Submit:      "Задать вопрос",
	},
}

// Confirmation returns the acknowledgment shown after submitting a form of
// the given kind.
func Confirmation(kind string) string {
	switch kind {
	case models.KindInitiative:
		return "Спасибо! Ваша инициатива отправлена в совет."
	case models.KindQuestion:
		return "Спасибо! Мы ответим на ваш вопрос в ближайшее время."
	default:
		return "Спасибо за отзыв!"
	}
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("page").Funcs(template.FuncMap{
		"comma":   func(n int) string { return humanize.Comma(int64(n)) },
		"ago":     humanize.Time,
		"percent": func(f float64) string { return fmt.Sprintf("%.0f", f) },
		"ruDate":  ruDate,
		"menu":    func() []tabs.NavItem { return tabs.Menu },
		"forms":   func() []FeedbackTab { return feedbackTabs },
	}).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing page templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the full page. Output is buffered so a template error never
// leaves a half-written response.
func (r *Renderer) Render(w io.Writer, d Data) error {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, "page.html", d); err != nil {
		return fmt.Errorf("rendering page: %w", err)
	}
	_, err := buf.WriteTo(w)
	return err
}

// ruDate turns 2025-10-05 into 05.10.2025; anything else is returned as is.
func ruDate(s string) string {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return s
	}
	return t.Format("02.01.2006")
}

//go:embed static
var staticFS embed.FS

// Static serves the page's stylesheet under /static/.
func Static() http.Handler {
	return http.FileServerFS(staticFS)
}
