package model

// SelectableList is an ordered single-selection container. It is rebuilt
// wholesale whenever fresh data arrives from the server; navigation wraps
// circularly and an unselected list remembers its last selection.
type SelectableList[T any] struct {
	items      []T
	selected   int // -1 when nothing is selected
	remembered int // selection at the time of the last Unselect, -1 when unset
}

// NewSelectableList builds a list over items, selecting index 0 when items
// is non-empty.
func NewSelectableList[T any](items []T) *SelectableList[T] {
	selected := -1
	if len(items) > 0 {
		selected = 0
	}
	return &SelectableList[T]{items: items, selected: selected, remembered: -1}
}

func (l *SelectableList[T]) Items() []T { return l.items }

func (l *SelectableList[T]) Len() int { return len(l.items) }

// SelectedIndex returns the selected index, or -1 when nothing is selected.
func (l *SelectableList[T]) SelectedIndex() int { return l.selected }

// Selected returns the selected item, if any.
func (l *SelectableList[T]) Selected() (T, bool) {
	var zero T
	if l.selected < 0 || l.selected >= len(l.items) {
		return zero, false
	}
	return l.items[l.selected], true
}

// Next advances the selection circularly. On an unselected list it restores
// the remembered index. No-op on an empty list.
func (l *SelectableList[T]) Next() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected < 0:
		l.selected = l.restore()
	case l.selected >= len(l.items)-1:
		l.selected = 0
	default:
		l.selected++
	}
}

// Previous moves the selection back circularly, wrapping to the last index
// from the top. No-op on an empty list.
func (l *SelectableList[T]) Previous() {
	if len(l.items) == 0 {
		return
	}
	switch {
	case l.selected < 0:
		l.selected = l.restore()
	case l.selected == 0:
		l.selected = len(l.items) - 1
	default:
		l.selected--
	}
}

// Unselect clears the selection, remembering it so the next Next/Previous
// resumes where the operator left off.
func (l *SelectableList[T]) Unselect() {
	if l.selected >= 0 {
		l.remembered = l.selected
	}
	l.selected = -1
}

// SelectFirst and SelectLast jump to the ends of the list.
func (l *SelectableList[T]) SelectFirst() {
	if len(l.items) > 0 {
		l.selected = 0
	}
}

func (l *SelectableList[T]) SelectLast() {
	if n := len(l.items); n > 0 {
		l.selected = n - 1
	}
}

func (l *SelectableList[T]) restore() int {
	if l.remembered >= 0 && l.remembered < len(l.items) {
		return l.remembered
	}
	return 0
}
