// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package page renders the council page as server-side HTML.

	r, err := page.NewRenderer()
	err = r.Render(w, page.Data{Tab: tab, Form: form, Polls: sess.Polls(), ...})

Sections, top to bottom: header with navigation, hero, polls, event
calendar, news, achievements, feedback form tabs, contacts, footer.

Poll percentages are rounded to whole numbers. In reaction mode each option
shows like/dislike counts and the like share; the bar fill is always
Percentage (against the poll total). Vote totals go through
humanize.Comma, news timestamps through humanize.Time.

The stylesheet is embedded and served by Static under /static/.
*/
package page
