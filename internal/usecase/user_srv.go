package usecase

import (
	"context"
	"fmt"
	"strings"

	"user-admin/internal/data/entity"
	"user-admin/internal/data/remote"
	"user-admin/internal/dto/request"
	"user-admin/internal/dto/response"
	"user-admin/internal/state"
	"user-admin/pkg/notify"

	"go.uber.org/zap"
)

// UserService sequences the CRUD orchestrations: validate, call the
// remote API, refresh the list, recompute statistics, notify.
//
// Error policy: every operation returns an explicit error once the
// failure has already been toasted, and the adaptor decides the HTTP
// mapping. The original swallowed some failures and re-raised others;
// one consistent policy was chosen instead (see DESIGN.md).
type UserService interface {
	Load(ctx context.Context) *response.UserList
	Create(ctx context.Context, req *request.UserRequest) (*entity.User, error)
	Get(ctx context.Context, id string) (*entity.User, error)
	Update(ctx context.Context, id string, req *request.UserRequest) (*entity.User, error)
	Delete(ctx context.Context, id string, confirm Confirmer) (bool, error)
	ToggleStatus(ctx context.Context, id string, active bool) (*entity.User, error)
	Statistics(ctx context.Context) (*response.Stats, error)
	RefreshStatistics(ctx context.Context) (*response.Stats, error)
	ActiveUsers(ctx context.Context) (*response.UserList, error)
}

type userService struct {
	api    remote.UserAPI
	store  *state.Store
	notify notify.Notifier
	log    *zap.Logger
}

func NewUserService(api remote.UserAPI, store *state.Store, notifier notify.Notifier, log *zap.Logger) UserService {
	return &userService{
		api:    api,
		store:  store,
		notify: notifier,
		log:    log,
	}
}

// Load replaces the canonical list wholesale from the remote service
// and renders it. A failed fetch toasts and renders the empty state, it
// never raises to the adaptor.
func (us *userService) Load(ctx context.Context) *response.UserList {
	users, err := us.api.List(ctx)
	if err != nil {
		us.log.Error("Failed to load users", zap.Error(err))
		us.notify.Error("Failed to fetch users")
		users = nil
	}

	us.store.SetUsers(users)
	return response.NewUserList(us.store)
}

func (us *userService) Create(ctx context.Context, req *request.UserRequest) (*entity.User, error) {
	req.Normalize()
	if violations := req.Violations(); len(violations) > 0 {
		us.notify.Error("Validation errors: " + strings.Join(violations, ", "))
		return nil, fmt.Errorf("validation failed: %s", strings.Join(violations, "; "))
	}

	created, err := us.api.Create(ctx, req)
	if err != nil {
		us.notify.Error("Failed to create user")
		return nil, fmt.Errorf("create user: %w", err)
	}

	us.notify.Success("User created successfully!")
	us.Load(ctx)
	us.refreshStats(ctx)

	// Land on the list so the new user is visible
	us.store.SetActiveTab(state.TabUsers)

	return created, nil
}

func (us *userService) Get(ctx context.Context, id string) (*entity.User, error) {
	user, err := us.api.Get(ctx, id)
	if err != nil {
		us.notify.Error("Failed to fetch user")
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update submits a full replacement of the mutable fields. The active
// flag is untouchable here; only ToggleStatus changes it.
func (us *userService) Update(ctx context.Context, id string, req *request.UserRequest) (*entity.User, error) {
	req.Normalize()
	if violations := req.Violations(); len(violations) > 0 {
		us.notify.Error("Validation errors: " + strings.Join(violations, ", "))
		return nil, fmt.Errorf("validation failed: %s", strings.Join(violations, "; "))
	}

	updated, err := us.api.Update(ctx, id, req)
	if err != nil {
		us.notify.Error("Failed to update user")
		return nil, fmt.Errorf("update user: %w", err)
	}

	us.notify.Success("User updated successfully!")
	us.Load(ctx)
	us.refreshStats(ctx)

	return updated, nil
}

// Delete asks for confirmation first; a declined prompt is a silent
// no-op and reports deleted=false.
func (us *userService) Delete(ctx context.Context, id string, confirm Confirmer) (bool, error) {
	if !confirm.Confirm("Are you sure you want to delete this user?") {
		return false, nil
	}

	if err := us.api.Delete(ctx, id); err != nil {
		us.notify.Error("Failed to delete user")
		return false, fmt.Errorf("delete user: %w", err)
	}

	us.notify.Success("User deleted successfully!")
	us.Load(ctx)
	us.refreshStats(ctx)

	return true, nil
}

func (us *userService) ToggleStatus(ctx context.Context, id string, active bool) (*entity.User, error) {
	updated, err := us.api.SetStatus(ctx, id, active)
	if err != nil {
		us.notify.Error("Failed to update user status")
		return nil, fmt.Errorf("toggle user status: %w", err)
	}

	statusText := "deactivated"
	if active {
		statusText = "activated"
	}
	us.notify.Success(fmt.Sprintf("User %s successfully!", statusText))

	us.Load(ctx)
	us.refreshStats(ctx)

	return updated, nil
}

// Statistics reduces over a fresh full fetch, independent of the list
// the operator is looking at. The two can briefly diverge.
func (us *userService) Statistics(ctx context.Context) (*response.Stats, error) {
	users, err := us.api.List(ctx)
	if err != nil {
		us.log.Error("Failed to update statistics", zap.Error(err))
		return nil, fmt.Errorf("update statistics: %w", err)
	}

	return response.NewStats(users), nil
}

func (us *userService) RefreshStatistics(ctx context.Context) (*response.Stats, error) {
	stats, err := us.Statistics(ctx)
	if err != nil {
		return nil, err
	}

	us.notify.Success("Statistics updated!")
	return stats, nil
}

// ActiveUsers is the passthrough listing of the remote active-only
// endpoint.
func (us *userService) ActiveUsers(ctx context.Context) (*response.UserList, error) {
	users, err := us.api.Active(ctx)
	if err != nil {
		us.notify.Error("Failed to fetch active users")
		return nil, fmt.Errorf("fetch active users: %w", err)
	}

	us.store.SetDisplayed(users)
	us.notify.Success(fmt.Sprintf("Showing %d active user(s)", len(users)))
	us.store.SetActiveTab(state.TabUsers)

	return response.NewUserList(us.store), nil
}

// refreshStats keeps the dashboard counters in step after a mutation.
// Failures are logged only; the mutation already succeeded.
func (us *userService) refreshStats(ctx context.Context) {
	if _, err := us.Statistics(ctx); err != nil {
		us.log.Warn("Statistics refresh after mutation failed", zap.Error(err))
	}
}
