package controller

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"

	"top-walker/pkg/client"
	"top-walker/pkg/edit"
	"top-walker/pkg/model"
	"top-walker/pkg/util/clip"
	"top-walker/pkg/view"
)

const version = "0.1.0"

// Level is the hierarchy level currently browsed.
type Level int

const (
	LevelSessions Level = iota
	LevelAgendaItems
	LevelMotions
)

func (l Level) kind() model.Kind {
	switch l {
	case LevelAgendaItems:
		return model.KindAgendaItem
	case LevelMotions:
		return model.KindMotion
	default:
		return model.KindSession
	}
}

// Mode is the single active input mode. FieldEdit nests inside Edit, which
// nests inside Browse; exactly one is active at a time.
type Mode int

const (
	ModeBrowse Mode = iota
	ModeEdit
	ModeFieldEdit
)

// navigable is the selection surface shared by the per-level lists.
type navigable interface {
	Next()
	Previous()
	Unselect()
	SelectFirst()
	SelectLast()
	SelectedIndex() int
	Len() int
}

// Controller owns the navigation state machine: the browsed level, the
// per-level lists, the drilled-into resources and the active draft. All
// state changes happen on the event goroutine; network calls block until
// they return.
type Controller struct {
	view    *view.View
	gateway client.Gateway
	ctx     context.Context

	mode  Mode
	level Level

	sessions *model.SelectableList[model.Session]
	items    *model.SelectableList[model.AgendaItem]
	motions  *model.SelectableList[model.Motion]

	focusedSession *model.Session
	focusedItem    *model.AgendaItem

	draft  *edit.Draft
	editor *edit.FieldEditor
}

// NewController wires the gateway to a fresh view.
func NewController(gateway client.Gateway, serverURL string) *Controller {
	v := view.NewView()
	v.SetHeader(fmt.Sprintf("Top-walker v.%s (on %s)", version, serverURL))

	return &Controller{
		view:     v,
		gateway:  gateway,
		ctx:      context.Background(),
		sessions: model.NewSelectableList[model.Session](nil),
		items:    model.NewSelectableList[model.AgendaItem](nil),
		motions:  model.NewSelectableList[model.Motion](nil),
	}
}

// Run fetches the session list and hands the terminal to tview.
func (c *Controller) Run() error {
	if err := c.start(); err != nil {
		return err
	}
	return c.view.App.Run()
}

// start performs the initial fetch. Unlike later fetches there is no
// previous view to fall back to, so a failure here aborts startup.
func (c *Controller) start() error {
	if err := c.refreshSessions(); err != nil {
		return fmt.Errorf("loading sessions: %w", err)
	}
	c.redrawBrowse()
	c.setInput()
	return nil
}

func (c *Controller) setInput() {
	c.view.App.SetInputCapture(func(ev *tcell.EventKey) *tcell.EventKey {
		switch c.mode {
		case ModeEdit:
			return c.editKey(ev)
		case ModeFieldEdit:
			return c.editorKey(ev)
		default:
			return c.browseKey(ev)
		}
	})
}

// browseKey consumes every key so the selection state stays authoritative;
// tview's own list navigation never runs. Ctrl-C falls through to the
// default quit.
func (c *Controller) browseKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyCtrlC {
		return ev
	}
	c.view.ClearStatus()
	switch ev.Key() {
	case tcell.KeyEscape:
		c.goBack()
	case tcell.KeyDown:
		c.nav().Next()
		c.syncBrowseSelection()
	case tcell.KeyUp:
		c.nav().Previous()
		c.syncBrowseSelection()
	case tcell.KeyLeft:
		c.nav().Unselect()
		c.syncBrowseSelection()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			c.goBack()
		case 'j':
			c.nav().Next()
			c.syncBrowseSelection()
		case 'k':
			c.nav().Previous()
			c.syncBrowseSelection()
		case 'h':
			c.nav().Unselect()
			c.syncBrowseSelection()
		case 'g':
			c.nav().SelectFirst()
			c.syncBrowseSelection()
		case 'G':
			c.nav().SelectLast()
			c.syncBrowseSelection()
		case 'o':
			c.openSelected()
		case 'e':
			c.editSelected()
		case 'p':
			c.createNew()
		case 'd':
			c.deleteSelected()
		case 'y':
			c.yankSelected()
		}
	}
	return nil
}

func (c *Controller) nav() navigable {
	switch c.level {
	case LevelAgendaItems:
		return c.items
	case LevelMotions:
		return c.motions
	default:
		return c.sessions
	}
}

func (c *Controller) selectedResource() (model.Resource, bool) {
	switch c.level {
	case LevelAgendaItems:
		t, ok := c.items.Selected()
		return t, ok
	case LevelMotions:
		m, ok := c.motions.Selected()
		return m, ok
	default:
		s, ok := c.sessions.Selected()
		return s, ok
	}
}

// openSelected drills one level down. The child list is replaced wholesale;
// when the fetch fails the current level stays displayed.
func (c *Controller) openSelected() {
	switch c.level {
	case LevelSessions:
		s, ok := c.sessions.Selected()
		if !ok {
			c.view.ShowInfo("nothing selected")
			return
		}
		items, err := c.gateway.ListAgendaItems(c.ctx, s.ID)
		if err != nil {
			c.fail("loading agenda items", err)
			return
		}
		session := s
		c.focusedSession = &session
		c.items = model.NewSelectableList(items)
		c.level = LevelAgendaItems
		c.redrawBrowse()
	case LevelAgendaItems:
		t, ok := c.items.Selected()
		if !ok {
			c.view.ShowInfo("nothing selected")
			return
		}
		motions, err := c.gateway.ListMotions(c.ctx, t.ID)
		if err != nil {
			c.fail("loading motions", err)
			return
		}
		item := t
		c.focusedItem = &item
		c.motions = model.NewSelectableList(motions)
		c.level = LevelMotions
		c.redrawBrowse()
	case LevelMotions:
		// deepest level
	}
}

// goBack climbs one level without re-fetching; the parent list keeps its
// selection. At the top it quits.
func (c *Controller) goBack() {
	switch c.level {
	case LevelSessions:
		c.view.App.Stop()
	case LevelAgendaItems:
		c.focusedSession = nil
		c.level = LevelSessions
		c.redrawBrowse()
	case LevelMotions:
		c.focusedItem = nil
		c.level = LevelAgendaItems
		c.redrawBrowse()
	}
}

// deleteSelected never removes locally: the owning list is re-fetched
// afterwards either way, so client and server cannot drift.
func (c *Controller) deleteSelected() {
	r, ok := c.selectedResource()
	if !ok {
		c.view.ShowInfo("nothing selected")
		return
	}
	var err error
	switch c.level {
	case LevelSessions:
		err = c.gateway.DeleteSession(c.ctx, r.ResourceID())
	case LevelAgendaItems:
		err = c.gateway.DeleteAgendaItem(c.ctx, r.ResourceID())
	case LevelMotions:
		err = c.gateway.DeleteMotion(c.ctx, r.ResourceID())
	}
	if err != nil {
		c.fail(fmt.Sprintf("deleting %s", r.ResourceKind()), err)
	}
	c.refreshCurrent()
	c.redrawBrowse()
}

func (c *Controller) yankSelected() {
	r, ok := c.selectedResource()
	if !ok {
		c.view.ShowInfo("nothing selected")
		return
	}
	if err := clip.Copy(r.ResourceID().String()); err != nil {
		c.fail("copying id", err)
		return
	}
	c.view.ShowInfo("id copied")
}

func (c *Controller) refreshSessions() error {
	sessions, err := c.gateway.ListSessions(c.ctx)
	if err != nil {
		return err
	}
	c.sessions = model.NewSelectableList(sessions)
	return nil
}

func (c *Controller) refreshAgendaItems() error {
	items, err := c.gateway.ListAgendaItems(c.ctx, c.focusedSession.ID)
	if err != nil {
		return err
	}
	c.items = model.NewSelectableList(items)
	return nil
}

func (c *Controller) refreshMotions() error {
	motions, err := c.gateway.ListMotions(c.ctx, c.focusedItem.ID)
	if err != nil {
		return err
	}
	c.motions = model.NewSelectableList(motions)
	return nil
}

// refreshCurrent re-fetches the browsed level after a mutation so the view
// reflects the authoritative server state.
func (c *Controller) refreshCurrent() {
	var err error
	switch c.level {
	case LevelSessions:
		err = c.refreshSessions()
	case LevelAgendaItems:
		err = c.refreshAgendaItems()
	case LevelMotions:
		err = c.refreshMotions()
	}
	if err != nil {
		c.fail("refreshing", err)
	}
}

func (c *Controller) redrawBrowse() {
	l := c.view.List
	l.Clear()
	l.SetTitle("[ [::b]" + c.listTitle() + "[::-] ]")
	switch c.level {
	case LevelSessions:
		for _, s := range c.sessions.Items() {
			l.AddItem(s.Display(), "", 0, nil)
		}
	case LevelAgendaItems:
		for _, t := range c.items.Items() {
			l.AddItem(t.Display(), "", 0, nil)
		}
	case LevelMotions:
		for _, m := range c.motions.Items() {
			l.AddItem(m.Display(), "", 0, nil)
		}
	}
	c.syncBrowseSelection()
}

func (c *Controller) listTitle() string {
	switch c.level {
	case LevelAgendaItems:
		return c.focusedSession.Name + " / tops"
	case LevelMotions:
		return c.focusedItem.Name + " / motions"
	default:
		return "Sessions"
	}
}

// syncBrowseSelection pushes the list's selection state into the view. An
// unselected list keeps its scroll position but loses the highlight.
func (c *Controller) syncBrowseSelection() {
	idx := c.nav().SelectedIndex()
	if idx >= 0 {
		c.view.List.SetCurrentItem(idx)
		c.view.Highlight(c.view.List, true)
	} else {
		c.view.Highlight(c.view.List, false)
	}
	c.fillDetails()
}

func (c *Controller) fillDetails() {
	d := c.view.Details
	d.Clear()
	r, ok := c.selectedResource()
	if !ok {
		return
	}
	fmt.Fprintf(d, "[blue] Id: [gray] %s\n\n", r.ResourceID())
	switch v := r.(type) {
	case model.Session:
		fmt.Fprintf(d, "[green] Name: [white] %s\n", v.Name)
		fmt.Fprintf(d, "[green] Date: [white] %s\n", v.Datetime)
	case model.AgendaItem:
		fmt.Fprintf(d, "[green] Title: [white] %s\n", v.Name)
		fmt.Fprintf(d, "[green] Weight: [white] %d\n\n", v.Weight)
		fmt.Fprintf(d, "[green] Content: [white]\n%s\n", v.Content)
	case model.Motion:
		fmt.Fprintf(d, "[green] Title: [white] %s\n", v.Title)
		fmt.Fprintf(d, "[green] Rationale: [white]\n%s\n\n", v.Rationale)
		fmt.Fprintf(d, "[green] Body: [white]\n%s\n", v.Body)
	}
}

func (c *Controller) fail(action string, err error) {
	log.WithError(err).Error(action)
	c.view.ShowError(action + ": " + err.Error())
}
