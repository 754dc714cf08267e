package controller

import (
	"strings"

	"github.com/gdamore/tcell/v2"

	"top-walker/pkg/client"
	"top-walker/pkg/edit"
	"top-walker/pkg/model"
)

// editSelected re-fetches the selected resource first, so the draft starts
// from the authoritative values rather than the possibly stale list entry.
func (c *Controller) editSelected() {
	r, ok := c.selectedResource()
	if !ok {
		c.view.ShowInfo("nothing selected")
		return
	}
	var (
		fresh model.Resource
		err   error
	)
	switch c.level {
	case LevelSessions:
		var s *model.Session
		if s, err = c.gateway.GetSession(c.ctx, r.ResourceID()); err == nil {
			fresh = *s
		}
	case LevelAgendaItems:
		var t *model.AgendaItem
		if t, err = c.gateway.GetAgendaItem(c.ctx, r.ResourceID()); err == nil {
			fresh = *t
		}
	case LevelMotions:
		var m *model.Motion
		if m, err = c.gateway.GetMotion(c.ctx, r.ResourceID()); err == nil {
			fresh = *m
		}
	}
	if err != nil {
		c.fail("loading "+r.ResourceKind().String(), err)
		return
	}
	c.draft = edit.NewEdit(fresh)
	c.mode = ModeEdit
	c.redrawFields()
	c.view.ShowEdit(c.draftTitle())
}

// createNew stages an empty draft for the browsed level. The focused parent
// resource supplies the scope on commit.
func (c *Controller) createNew() {
	c.draft = edit.NewCreate(c.level.kind())
	c.mode = ModeEdit
	c.redrawFields()
	c.view.ShowEdit(c.draftTitle())
}

func (c *Controller) draftTitle() string {
	if c.draft.Mode == edit.Editing {
		return "Edit " + c.draft.Kind.String()
	}
	return "New " + c.draft.Kind.String()
}

func (c *Controller) editKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		c.discardDraft()
	case tcell.KeyEscape:
		c.commitDraft()
	case tcell.KeyDown:
		c.draft.Fields.Next()
		c.syncFieldSelection()
	case tcell.KeyUp:
		c.draft.Fields.Previous()
		c.syncFieldSelection()
	case tcell.KeyLeft:
		c.draft.Fields.Unselect()
		c.syncFieldSelection()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			c.commitDraft()
		case 'j':
			c.draft.Fields.Next()
			c.syncFieldSelection()
		case 'k':
			c.draft.Fields.Previous()
			c.syncFieldSelection()
		case 'h':
			c.draft.Fields.Unselect()
			c.syncFieldSelection()
		case 'e':
			c.openFieldEditor()
		}
	}
	return nil
}

// commitDraft sends the staged fields as a create or patch. On failure the
// draft stays open so the operator can retry or discard; nothing is thrown
// away silently.
func (c *Controller) commitDraft() {
	d := c.draft
	fields := client.Fields(d.Body())
	var err error
	switch d.Kind {
	case model.KindSession:
		if d.Mode == edit.Editing {
			err = c.gateway.PatchSession(c.ctx, d.OriginalID(), fields)
		} else {
			err = c.gateway.CreateSession(c.ctx, fields)
		}
	case model.KindAgendaItem:
		if d.Mode == edit.Editing {
			err = c.gateway.PatchAgendaItem(c.ctx, d.OriginalID(), c.focusedSession.ID, fields)
		} else {
			err = c.gateway.CreateAgendaItem(c.ctx, c.focusedSession.ID, fields)
		}
	case model.KindMotion:
		if d.Mode == edit.Editing {
			err = c.gateway.PatchMotion(c.ctx, d.OriginalID(), fields)
		} else {
			err = c.gateway.CreateMotion(c.ctx, c.focusedItem.ID, fields)
		}
	}
	if err != nil {
		c.fail("saving "+d.Kind.String(), err)
		return
	}
	c.draft = nil
	c.mode = ModeBrowse
	c.refreshCurrent()
	c.redrawBrowse()
	c.view.ShowBrowse()
}

func (c *Controller) discardDraft() {
	c.draft = nil
	c.editor = nil
	c.mode = ModeBrowse
	c.redrawBrowse()
	c.view.ShowBrowse()
	c.view.ShowInfo("draft discarded")
}

func (c *Controller) redrawFields() {
	f := c.view.Fields
	f.Clear()
	for _, p := range c.draft.Fields.Items() {
		f.AddItem(p.Label, preview(p.Text), 0, nil)
	}
	c.syncFieldSelection()
}

// preview shows only the first line of a multi-line value in the field list.
func preview(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}

func (c *Controller) syncFieldSelection() {
	idx := c.draft.Fields.SelectedIndex()
	if idx >= 0 {
		c.view.Fields.SetCurrentItem(idx)
		c.view.Highlight(c.view.Fields, true)
	} else {
		c.view.Highlight(c.view.Fields, false)
	}
}

func (c *Controller) openFieldEditor() {
	p, ok := c.draft.SelectedParam()
	if !ok {
		c.view.ShowInfo("no field selected")
		return
	}
	c.editor = edit.NewFieldEditor(p)
	c.mode = ModeFieldEdit
	c.redrawEditor()
	c.view.ShowEditor(p.Label)
}

// editorKey forwards every keystroke into the text buffer; only Esc leaves,
// writing the buffer back into the selected field.
func (c *Controller) editorKey(ev *tcell.EventKey) *tcell.EventKey {
	switch ev.Key() {
	case tcell.KeyEscape:
		c.closeFieldEditor()
		return nil
	case tcell.KeyEnter:
		c.editor.Newline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		c.editor.Backspace()
	case tcell.KeyRune:
		c.editor.Insert(ev.Rune())
	}
	c.redrawEditor()
	return nil
}

func (c *Controller) closeFieldEditor() {
	c.draft.SetSelectedText(c.editor.Text())
	c.editor = nil
	c.mode = ModeEdit
	c.redrawFields()
	c.view.ShowEdit(c.draftTitle())
}

func (c *Controller) redrawEditor() {
	c.view.Editor.SetText(c.editor.Text() + "▌")
}
