package usecase

import (
	"context"
	"fmt"
	"strings"

	"user-admin/internal/data/entity"
	"user-admin/internal/data/remote"
	"user-admin/internal/dto/response"
	"user-admin/internal/state"
	"user-admin/pkg/notify"

	"go.uber.org/zap"
)

// SearchService holds the seven search/filter entry points. They are
// mutually exclusive in effect: each pass replaces the displayed list,
// filters never compose.
type SearchService interface {
	Quick(ctx context.Context, query string) (*response.UserList, error)
	ByEmail(ctx context.Context, email string) (*response.UserList, error)
	ByFirstName(ctx context.Context, firstName string) (*response.UserList, error)
	ByLastName(ctx context.Context, lastName string) (*response.UserList, error)
	ByRole(ctx context.Context, role string) (*response.UserList, error)
	ByStatus(ctx context.Context, status string) (*response.UserList, error)
	Clear(ctx context.Context) *response.UserList
}

type searchService struct {
	api    remote.UserAPI
	store  *state.Store
	users  UserService
	notify notify.Notifier
	log    *zap.Logger
}

func NewSearchService(api remote.UserAPI, store *state.Store, users UserService, notifier notify.Notifier, log *zap.Logger) SearchService {
	return &searchService{
		api:    api,
		store:  store,
		users:  users,
		notify: notifier,
		log:    log,
	}
}

// Quick fetches the full list and filters client-side across name,
// email, role, phone and address. An empty query reloads the unfiltered
// list and warns.
func (ss *searchService) Quick(ctx context.Context, query string) (*response.UserList, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		list := ss.users.Load(ctx)
		ss.notify.Warning("Please enter a search term")
		return list, nil
	}

	all, err := ss.api.List(ctx)
	if err != nil {
		ss.notify.Error("Search failed")
		return nil, fmt.Errorf("quick search: %w", err)
	}

	var filtered []*entity.User
	for _, user := range all {
		if matchesQuick(user, term) {
			filtered = append(filtered, user)
		}
	}

	if len(filtered) == 0 {
		ss.notify.Warning("No users found matching your search")
	} else {
		ss.notify.Success(fmt.Sprintf("Found %d user(s)", len(filtered)))
	}

	return ss.display(filtered), nil
}

func (ss *searchService) ByEmail(ctx context.Context, email string) (*response.UserList, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		ss.notify.Warning("Please enter an email to search")
		return nil, nil
	}

	users, err := ss.api.FindByEmail(ctx, email)
	if err != nil {
		// Not found and transport failure look the same here
		ss.notify.Warning("No users found with that email")
		return nil, fmt.Errorf("search by email: %w", err)
	}

	ss.countToast(len(users), "No users found with that email")
	return ss.display(users), nil
}

func (ss *searchService) ByFirstName(ctx context.Context, firstName string) (*response.UserList, error) {
	firstName = strings.TrimSpace(firstName)
	if firstName == "" {
		ss.notify.Warning("Please enter a first name to search")
		return nil, nil
	}

	users, err := ss.api.SearchFirstName(ctx, firstName)
	if err != nil {
		ss.notify.Warning("No users found with that first name")
		return nil, fmt.Errorf("search by first name: %w", err)
	}

	ss.countToast(len(users), "No users found with that first name")
	return ss.display(users), nil
}

func (ss *searchService) ByLastName(ctx context.Context, lastName string) (*response.UserList, error) {
	lastName = strings.TrimSpace(lastName)
	if lastName == "" {
		ss.notify.Warning("Please enter a last name to search")
		return nil, nil
	}

	users, err := ss.api.SearchLastName(ctx, lastName)
	if err != nil {
		ss.notify.Warning("No users found with that last name")
		return nil, fmt.Errorf("search by last name: %w", err)
	}

	ss.countToast(len(users), "No users found with that last name")
	return ss.display(users), nil
}

// ByRole with an empty selection reloads all users.
func (ss *searchService) ByRole(ctx context.Context, role string) (*response.UserList, error) {
	if role == "" {
		list := ss.users.Load(ctx)
		ss.notify.Success("Showing all users")
		ss.store.SetActiveTab(state.TabUsers)
		return list, nil
	}

	users, err := ss.api.ByRole(ctx, role)
	if err != nil {
		ss.notify.Error("Failed to filter by role")
		ss.store.SetActiveTab(state.TabUsers)
		return nil, fmt.Errorf("filter by role: %w", err)
	}

	ss.notify.Success(fmt.Sprintf("Found %d user(s) with role: %s", len(users), role))
	return ss.display(users), nil
}

// ByStatus is asymmetric on purpose: "active" has a dedicated remote
// endpoint, "inactive" does not and is filtered client-side.
func (ss *searchService) ByStatus(ctx context.Context, status string) (*response.UserList, error) {
	switch status {
	case "":
		list := ss.users.Load(ctx)
		ss.notify.Success("Showing all users")
		ss.store.SetActiveTab(state.TabUsers)
		return list, nil

	case "active":
		users, err := ss.api.Active(ctx)
		if err != nil {
			ss.notify.Error("Failed to filter by status")
			ss.store.SetActiveTab(state.TabUsers)
			return nil, fmt.Errorf("filter active users: %w", err)
		}
		ss.notify.Success(fmt.Sprintf("Found %d active user(s)", len(users)))
		return ss.display(users), nil

	default:
		all, err := ss.api.List(ctx)
		if err != nil {
			ss.notify.Error("Failed to filter by status")
			ss.store.SetActiveTab(state.TabUsers)
			return nil, fmt.Errorf("filter inactive users: %w", err)
		}

		var inactive []*entity.User
		for _, user := range all {
			if !user.Active {
				inactive = append(inactive, user)
			}
		}
		ss.notify.Success(fmt.Sprintf("Found %d inactive user(s)", len(inactive)))
		return ss.display(inactive), nil
	}
}

// Clear resets every filter by reloading the unfiltered list; the
// browser owns the input controls and resets them on this response.
func (ss *searchService) Clear(ctx context.Context) *response.UserList {
	list := ss.users.Load(ctx)
	ss.notify.Success("All filters cleared")
	ss.store.SetActiveTab(state.TabUsers)
	return list
}

func (ss *searchService) display(users []*entity.User) *response.UserList {
	ss.store.SetDisplayed(users)
	ss.store.SetActiveTab(state.TabUsers)
	return response.NewUserList(ss.store)
}

func (ss *searchService) countToast(count int, emptyMessage string) {
	if count == 0 {
		ss.notify.Warning(emptyMessage)
		return
	}
	ss.notify.Success(fmt.Sprintf("Found %d user(s)", count))
}

func matchesQuick(user *entity.User, term string) bool {
	if strings.Contains(strings.ToLower(user.FirstName), term) ||
		strings.Contains(strings.ToLower(user.LastName), term) ||
		strings.Contains(strings.ToLower(user.Email), term) {
		return true
	}
	if user.Role != "" && strings.Contains(strings.ToLower(string(user.Role)), term) {
		return true
	}
	if user.PhoneNumber != nil && strings.Contains(*user.PhoneNumber, term) {
		return true
	}
	if user.Address != nil && strings.Contains(strings.ToLower(*user.Address), term) {
		return true
	}
	return false
}
