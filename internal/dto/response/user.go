package response

import (
	"user-admin/internal/data/entity"
	"user-admin/internal/state"
	"user-admin/pkg/utils"
)

// UserCard is the display fragment for one record: everything the list
// view shows, formatted and ready to render.
type UserCard struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Status   string `json:"status"`
	Role     string `json:"role"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Created  string `json:"created"`
	Selected bool   `json:"selected"`
}

// EmptyState replaces the card list when there is nothing to show.
type EmptyState struct {
	Title   string `json:"title"`
	Message string `json:"message"`
}

type UserList struct {
	Cards     []UserCard           `json:"cards"`
	Empty     *EmptyState          `json:"empty,omitempty"`
	Count     int                  `json:"count"`
	SelectAll state.SelectAllState `json:"selectAll"`
	ActiveTab string               `json:"activeTab"`
}

// Helper converters

func CardFromUser(user *entity.User, selected bool) UserCard {
	card := UserCard{
		ID:       user.ID,
		Name:     user.FullName(),
		Email:    user.Email,
		Status:   StatusLabel(user.Active),
		Role:     "N/A",
		Phone:    "N/A",
		Address:  "N/A",
		Created:  utils.FormatDate(user.CreatedAt),
		Selected: selected,
	}

	if user.Role != "" {
		card.Role = string(user.Role)
	}
	if user.PhoneNumber != nil && *user.PhoneNumber != "" {
		card.Phone = *user.PhoneNumber
	}
	if user.Address != nil && *user.Address != "" {
		card.Address = *user.Address
	}

	return card
}

func StatusLabel(active bool) string {
	if active {
		return "Active"
	}
	return "Inactive"
}
