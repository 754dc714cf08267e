package edit

// FieldEditor holds the text buffer while a single field's text is edited.
// Keystrokes append at the end of the buffer; the result is written back to
// the draft when the editor is closed.
type FieldEditor struct {
	Label string
	buf   []rune
}

// NewFieldEditor seeds the buffer with the field's current text.
func NewFieldEditor(p Param) *FieldEditor {
	return &FieldEditor{Label: p.Label, buf: []rune(p.Text)}
}

func (e *FieldEditor) Insert(r rune) {
	e.buf = append(e.buf, r)
}

func (e *FieldEditor) Newline() {
	e.buf = append(e.buf, '\n')
}

func (e *FieldEditor) Backspace() {
	if len(e.buf) > 0 {
		e.buf = e.buf[:len(e.buf)-1]
	}
}

func (e *FieldEditor) Text() string {
	return string(e.buf)
}
