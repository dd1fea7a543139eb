package state

import (
	"sort"
	"sync"

	"user-admin/internal/data/entity"
)

const (
	TabUsers  = "users"
	TabCreate = "create"
	TabSearch = "search"
	TabStats  = "stats"
)

// SelectAllState mirrors the tri-state of the select-all control.
type SelectAllState string

const (
	SelectAllChecked       SelectAllState = "checked"
	SelectAllIndeterminate SelectAllState = "indeterminate"
	SelectAllUnchecked     SelectAllState = "unchecked"
)

// Store holds the console session state: the canonical list fetched
// from the remote service, the subset currently displayed, the
// selection set and the active tab. The list is replaced wholesale on
// every reload, never merged. The selection set lives independently of
// the list's lifecycle.
//
// The browser runtime the original ran on was single-threaded; here
// concurrent bulk operations share this state, so access is guarded.
type Store struct {
	mu        sync.RWMutex
	users     []*entity.User
	displayed []*entity.User
	selected  map[string]struct{}
	activeTab string
}

func NewStore() *Store {
	return &Store{
		selected:  make(map[string]struct{}),
		activeTab: TabUsers,
	}
}

// SetUsers replaces the canonical list and the displayed list together,
// as a full reload does.
func (s *Store) SetUsers(users []*entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = users
	s.displayed = users
}

// SetDisplayed replaces only the rendered subset. Search and filter
// passes land here; the canonical list (and with it, export) is
// untouched.
func (s *Store) SetDisplayed(users []*entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.displayed = users
}

func (s *Store) Users() []*entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.users
}

func (s *Store) Displayed() []*entity.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.displayed
}

func (s *Store) DisplayedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.displayed)
}

// ToggleSelect flips one record's selection and reports whether it is
// selected afterwards.
func (s *Store) ToggleSelect(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.selected[id]; ok {
		delete(s.selected, id)
		return false
	}
	s.selected[id] = struct{}{}
	return true
}

// SelectAllDisplayed selects every currently rendered record.
func (s *Store) SelectAllDisplayed() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.displayed {
		s.selected[user.ID] = struct{}{}
	}
}

func (s *Store) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = make(map[string]struct{})
}

func (s *Store) SelectedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.selected)
}

// SelectedIDs returns the selection in stable order.
func (s *Store) SelectedIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := make([]string, 0, len(s.selected))
	for id := range s.selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// SelectAll derives the select-all control state from the selected
// count relative to the rendered count.
func (s *Store) SelectAll() SelectAllState {
	s.mu.RLock()
	defer s.mu.RUnlock()

	selected := len(s.selected)
	rendered := len(s.displayed)

	switch {
	case selected == 0:
		return SelectAllUnchecked
	case selected == rendered:
		return SelectAllChecked
	default:
		return SelectAllIndeterminate
	}
}

func (s *Store) SetActiveTab(tab string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.activeTab = tab
}

func (s *Store) ActiveTab() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.activeTab
}
