package oura

import (
	"net/url"
	"time"
)

const (
	DateLayout = "2006-01-02"

	// DefaultWindowDays is how far back Start defaults when omitted.
	DefaultWindowDays = 7
)

// ListParams bounds a List call by summary date. Dates are YYYY-MM-DD and are
// sent as given; an empty Start or End falls back to the default window ending
// today.
type ListParams struct {
	Start string
	End   string
}

// Date formats t as a calendar date in t's location.
func Date(t time.Time) string {
	return t.Format(DateLayout)
}

// DefaultWindow returns the start and end dates of the default window ending on
// now's calendar day.
func DefaultWindow(now time.Time) (start, end string) {
	return Date(now.AddDate(0, 0, -DefaultWindowDays)), Date(now)
}

// resolve fills an empty Start or End from the default window ending on now.
func (p *ListParams) resolve(now time.Time) ListParams {
	start, end := DefaultWindow(now)
	if p != nil {
		if p.Start != "" {
			start = p.Start
		}
		if p.End != "" {
			end = p.End
		}
	}
	return ListParams{Start: start, End: end}
}

func (p *ListParams) values(now time.Time) url.Values {
	r := p.resolve(now)

	v := make(url.Values)
	v.Set("start", r.Start)
	v.Set("end", r.End)
	return v
}

// Window returns p with defaults filled from one reading of the client's clock.
// Pass the result to several List calls to fetch them over the same dates.
func (c *Client) Window(p *ListParams) *ListParams {
	r := p.resolve(c.now())
	return &r
}
