package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind identifies one of the three levels of the resource hierarchy.
type Kind int

const (
	KindSession Kind = iota
	KindAgendaItem
	KindMotion
)

func (k Kind) String() string {
	switch k {
	case KindSession:
		return "session"
	case KindAgendaItem:
		return "agenda item"
	case KindMotion:
		return "motion"
	}
	return "unknown"
}

const dateTimeLayout = "2006-01-02T15:04:05"

// DateTime is a timezone-naive timestamp as the API serializes it,
// e.g. "2024-05-01T18:30:00".
type DateTime struct {
	time.Time
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := string(b)
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("datetime %s: not a JSON string", s)
	}
	t, err := time.Parse(dateTimeLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(dateTimeLayout) + `"`), nil
}

func (d DateTime) String() string {
	return d.Format(dateTimeLayout)
}

// Resource is implemented by all three resource variants. Identity is the
// server-assigned id; everything beyond it is mutable on the server.
type Resource interface {
	ResourceKind() Kind
	ResourceID() uuid.UUID
	// Display is the single line shown for the resource in the browse list.
	Display() string
}

// Session is a scheduled meeting, the top-level resource.
type Session struct {
	Name     string    `json:"name"`
	Datetime DateTime  `json:"datetime"`
	ID       uuid.UUID `json:"id"`
}

func (s Session) ResourceKind() Kind    { return KindSession }
func (s Session) ResourceID() uuid.UUID { return s.ID }
func (s Session) Display() string       { return fmt.Sprintf("%s %s", s.Name, s.Datetime) }

// AgendaItem is an agenda entry belonging to a session.
type AgendaItem struct {
	Name    string    `json:"name"`
	ID      uuid.UUID `json:"id"`
	Content string    `json:"content"`
	Weight  int       `json:"weight"`
}

func (t AgendaItem) ResourceKind() Kind    { return KindAgendaItem }
func (t AgendaItem) ResourceID() uuid.UUID { return t.ID }
func (t AgendaItem) Display() string       { return t.Name }

// Motion is a proposal belonging to an agenda item.
type Motion struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Rationale string    `json:"rationale"`
	Body      string    `json:"body"`
}

func (m Motion) ResourceKind() Kind    { return KindMotion }
func (m Motion) ResourceID() uuid.UUID { return m.ID }
func (m Motion) Display() string       { return m.Title }
