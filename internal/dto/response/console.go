package response

import (
	"user-admin/internal/data/entity"
	"user-admin/internal/state"
)

type Stats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
	Admins int `json:"admins"`
}

type ThemeResponse struct {
	Theme string `json:"theme"`
}

type TabResponse struct {
	ActiveTab string `json:"activeTab"`
}

type SelectionState struct {
	SelectedIDs []string             `json:"selectedIds"`
	Count       int                  `json:"count"`
	SelectAll   state.SelectAllState `json:"selectAll"`
}

// BulkResult reports one identifier's outcome inside a bulk operation,
// so partial failure stays observable.
type BulkResult struct {
	ID    string `json:"id"`
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// NewUserList renders the current store state into display fragments,
// or the empty-state fragment when there is nothing to show.
func NewUserList(store *state.Store) *UserList {
	users := store.Displayed()

	list := &UserList{
		Count:     len(users),
		SelectAll: store.SelectAll(),
		ActiveTab: store.ActiveTab(),
	}

	if len(users) == 0 {
		list.Empty = &EmptyState{
			Title:   "No users found",
			Message: "Try adjusting your search criteria or create a new user.",
		}
		return list
	}

	selected := make(map[string]struct{}, len(store.SelectedIDs()))
	for _, id := range store.SelectedIDs() {
		selected[id] = struct{}{}
	}

	list.Cards = make([]UserCard, len(users))
	for i, user := range users {
		_, isSelected := selected[user.ID]
		list.Cards[i] = CardFromUser(user, isSelected)
	}

	return list
}

// NewStats reduces a full list into the dashboard counters.
func NewStats(users []*entity.User) *Stats {
	stats := &Stats{Total: len(users)}
	for _, user := range users {
		if user.Active {
			stats.Active++
		}
		if user.Role == entity.RoleAdmin {
			stats.Admins++
		}
	}
	return stats
}
