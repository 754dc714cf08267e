package view

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

const (
	pageBrowse = "browse"
	pageEdit   = "edit"
	pageEditor = "editor"
)

const (
	BrowseLegend = "[::b][↓,j/↑,k][::-] Down/Up [::b][h][::-] Unselect [::b][o][::-] Open [::b][e][::-] Edit [::b][p][::-] New [::b][d][::-] Delete [::b][y][::-] Yank id [::b][q,Esc][::-] Back/Quit"
	EditLegend   = "[::b][↓,j/↑,k][::-] Field [::b][h][::-] Unselect [::b][e][::-] Edit field [::b][q,Esc][::-] Save [::b][C-c][::-] Discard"
	EditorLegend = "[::b][Esc][::-] Apply [::b][Enter][::-] Newline [::b][Backspace][::-] Delete"
)

// View owns the whole widget tree. It carries no navigation state; the
// controller pushes every change in.
type View struct {
	App     *tview.Application
	Frame   *tview.Frame
	Pages   *tview.Pages
	List    *tview.List
	Details *tview.TextView
	Fields  *tview.List
	Editor  *tview.TextView
	Status  *tview.TextView

	header string
	legend string
}

// NewView ...
func NewView() *View {
	app := tview.NewApplication()

	list := tview.NewList().
		ShowSecondaryText(false)
	list.SetBorder(true).
		SetTitleAlign(tview.AlignLeft)
	list.SetMainTextColor(tcell.Color31)

	details := tview.NewTextView().
		SetDynamicColors(true).
		SetWordWrap(true)
	details.SetBorder(true).SetTitle("Details")

	browse := tview.NewFlex()
	browse.AddItem(list, 0, 2, true)
	browse.AddItem(details, 0, 3, false)

	fields := tview.NewList()
	fields.SetBorder(true).
		SetTitleAlign(tview.AlignLeft)
	fields.SetMainTextColor(tcell.Color31)

	editor := tview.NewTextView().
		SetWordWrap(true)
	editor.SetBorder(true).
		SetTitleAlign(tview.AlignLeft)

	status := tview.NewTextView().
		SetDynamicColors(true)

	pages := tview.NewPages().
		AddPage(pageBrowse, browse, true, true).
		AddPage(pageEdit, fields, true, false).
		AddPage(pageEditor, editor, true, false)

	body := tview.NewFlex().SetDirection(tview.FlexRow)
	body.AddItem(pages, 0, 1, true)
	body.AddItem(status, 1, 0, false)

	frame := tview.NewFrame(body)

	app.SetRoot(frame, true)

	v := View{
		App:     app,
		Frame:   frame,
		Pages:   pages,
		List:    list,
		Details: details,
		Fields:  fields,
		Editor:  editor,
		Status:  status,
		legend:  BrowseLegend,
	}
	v.redrawFrame()

	return &v
}

// SetHeader sets the top frame line (program name, server).
func (v *View) SetHeader(text string) {
	v.header = text
	v.redrawFrame()
}

func (v *View) redrawFrame() {
	v.Frame.Clear()
	if v.header != "" {
		v.Frame.AddText(v.header, true, tview.AlignCenter, tcell.ColorGreen)
	}
	v.Frame.AddText(v.legend, false, tview.AlignCenter, tcell.ColorWhite)
}

func (v *View) setLegend(legend string) {
	v.legend = legend
	v.redrawFrame()
}

// ShowBrowse brings the list page to the front.
func (v *View) ShowBrowse() {
	v.Pages.SwitchToPage(pageBrowse)
	v.App.SetFocus(v.List)
	v.setLegend(BrowseLegend)
}

// ShowEdit brings the field list page to the front.
func (v *View) ShowEdit(title string) {
	v.Fields.SetTitle("[ [::b]" + title + "[::-] ]")
	v.Pages.SwitchToPage(pageEdit)
	v.App.SetFocus(v.Fields)
	v.setLegend(EditLegend)
}

// ShowEditor brings the single-field text editor to the front.
func (v *View) ShowEditor(label string) {
	v.Editor.SetTitle("[ [::b]" + label + "[::-] ]")
	v.Pages.SwitchToPage(pageEditor)
	v.App.SetFocus(v.Editor)
	v.setLegend(EditorLegend)
}

// Highlight toggles a list's selection highlight. Turning it off keeps the
// scroll position while showing the list as unselected.
func (v *View) Highlight(list *tview.List, on bool) {
	if on {
		list.SetSelectedTextColor(tcell.ColorBlack)
		list.SetSelectedBackgroundColor(tcell.ColorWhite)
	} else {
		list.SetSelectedTextColor(tcell.Color31)
		list.SetSelectedBackgroundColor(tview.Styles.PrimitiveBackgroundColor)
	}
}

func (v *View) ShowError(msg string) {
	v.Status.SetText("[red]" + tview.Escape(msg) + "[-]")
}

func (v *View) ShowInfo(msg string) {
	v.Status.SetText("[gray]" + tview.Escape(msg) + "[-]")
}

func (v *View) ClearStatus() {
	v.Status.SetText("")
}
