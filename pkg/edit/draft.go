package edit

import (
	"strings"

	"github.com/google/uuid"

	"top-walker/pkg/model"
)

// Param is one editable field staged in a draft.
type Param struct {
	Label string
	Text  string
}

// Mode says whether a draft creates a new resource or updates an existing
// one. A draft is destroyed on commit or discard.
type Mode int

const (
	Creating Mode = iota
	Editing
)

type fieldSpec struct {
	label      string
	createOnly bool
	get        func(model.Resource) string
}

// One schema per resource kind. NewCreate, NewEdit and Body all read the
// same table, so the label set cannot drift between the code paths.
var schemas = map[model.Kind][]fieldSpec{
	model.KindSession: {
		{label: "Date", get: func(r model.Resource) string { return r.(model.Session).Datetime.String() }},
		{label: "Name", get: func(r model.Resource) string { return r.(model.Session).Name }},
	},
	model.KindAgendaItem: {
		{label: "Title", get: func(r model.Resource) string { return r.(model.AgendaItem).Name }},
		{label: "Content", get: func(r model.Resource) string { return r.(model.AgendaItem).Content }},
	},
	model.KindMotion: {
		{label: "Title", get: func(r model.Resource) string { return r.(model.Motion).Title }},
		{label: "Rationale", get: func(r model.Resource) string { return r.(model.Motion).Rationale }},
		{label: "Body", get: func(r model.Resource) string { return r.(model.Motion).Body }},
		{label: "Proposer", createOnly: true},
	},
}

// Draft is an in-progress create or edit of a single resource: the staged
// field values plus enough context to commit them.
type Draft struct {
	Kind   model.Kind
	Mode   Mode
	Fields *model.SelectableList[Param]

	originalID uuid.UUID // set in Editing mode only
}

// NewCreate stages a draft with the full create label set for kind, all
// values empty.
func NewCreate(kind model.Kind) *Draft {
	specs := schemas[kind]
	params := make([]Param, 0, len(specs))
	for _, f := range specs {
		params = append(params, Param{Label: f.label})
	}
	return &Draft{
		Kind:   kind,
		Mode:   Creating,
		Fields: model.NewSelectableList(params),
	}
}

// NewEdit stages a draft pre-populated from r, which should be the freshly
// fetched resource rather than a cached copy. Create-only fields are left
// out; r supplies the id for the eventual patch.
func NewEdit(r model.Resource) *Draft {
	kind := r.ResourceKind()
	var params []Param
	for _, f := range schemas[kind] {
		if f.createOnly {
			continue
		}
		params = append(params, Param{Label: f.label, Text: f.get(r)})
	}
	return &Draft{
		Kind:       kind,
		Mode:       Editing,
		Fields:     model.NewSelectableList(params),
		originalID: r.ResourceID(),
	}
}

// OriginalID is the id of the resource being edited.
func (d *Draft) OriginalID() uuid.UUID { return d.originalID }

// SelectedParam returns the currently selected field, if any.
func (d *Draft) SelectedParam() (Param, bool) { return d.Fields.Selected() }

// SetSelectedText writes text back into the currently selected field.
// No-op when no field is selected.
func (d *Draft) SetSelectedText(text string) {
	i := d.Fields.SelectedIndex()
	if i < 0 {
		return
	}
	d.Fields.Items()[i].Text = text
}

// Body maps lower-cased labels to their staged text, the wire form shared
// by create and patch calls.
func (d *Draft) Body() map[string]string {
	body := make(map[string]string, d.Fields.Len())
	for _, p := range d.Fields.Items() {
		body[strings.ToLower(p.Label)] = p.Text
	}
	return body
}
