package usecase

import (
	"context"
	"fmt"
	"sync"

	"user-admin/internal/data/remote"
	"user-admin/internal/dto/response"
	"user-admin/internal/state"
	"user-admin/pkg/notify"

	"go.uber.org/zap"
)

// BulkService fans one operation out across the selection set. Requests
// run concurrently with no ordering guarantee; each identifier notifies
// independently and reports its own result, and the selection is
// cleared only after every request has settled.
type BulkService interface {
	ToggleSelection(id string) *response.SelectionState
	SelectAll(checked bool) *response.SelectionState
	Delete(ctx context.Context, confirm Confirmer) ([]response.BulkResult, error)
	Activate(ctx context.Context) ([]response.BulkResult, error)
	Deactivate(ctx context.Context) ([]response.BulkResult, error)
}

type bulkService struct {
	api    remote.UserAPI
	store  *state.Store
	users  UserService
	notify notify.Notifier
	log    *zap.Logger
}

func NewBulkService(api remote.UserAPI, store *state.Store, users UserService, notifier notify.Notifier, log *zap.Logger) BulkService {
	return &bulkService{
		api:    api,
		store:  store,
		users:  users,
		notify: notifier,
		log:    log,
	}
}

func (bs *bulkService) ToggleSelection(id string) *response.SelectionState {
	bs.store.ToggleSelect(id)
	return bs.selectionState()
}

func (bs *bulkService) SelectAll(checked bool) *response.SelectionState {
	if checked {
		bs.store.SelectAllDisplayed()
	} else {
		bs.store.ClearSelection()
	}
	return bs.selectionState()
}

// Delete confirms once for the whole batch, then deletes every selected
// identifier concurrently.
func (bs *bulkService) Delete(ctx context.Context, confirm Confirmer) ([]response.BulkResult, error) {
	ids := bs.store.SelectedIDs()
	if len(ids) == 0 {
		bs.notify.Warning("Please select users to delete")
		return nil, nil
	}

	if !confirm.Confirm(fmt.Sprintf("Are you sure you want to delete %d user(s)?", len(ids))) {
		return nil, nil
	}

	results := bs.fanOut(ids, func(id string) error {
		err := bs.api.Delete(ctx, id)
		if err != nil {
			bs.notify.Error("Failed to delete user")
			return err
		}
		bs.notify.Success("User deleted successfully!")
		return nil
	})

	bs.store.ClearSelection()
	bs.notify.Success(fmt.Sprintf("%d users deleted successfully", len(ids)))

	bs.users.Load(ctx)
	if _, err := bs.users.Statistics(ctx); err != nil {
		bs.log.Warn("Statistics refresh after bulk delete failed", zap.Error(err))
	}

	return results, nil
}

func (bs *bulkService) Activate(ctx context.Context) ([]response.BulkResult, error) {
	return bs.setStatus(ctx, true)
}

func (bs *bulkService) Deactivate(ctx context.Context) ([]response.BulkResult, error) {
	return bs.setStatus(ctx, false)
}

func (bs *bulkService) setStatus(ctx context.Context, active bool) ([]response.BulkResult, error) {
	verb := "deactivate"
	done := "deactivated"
	if active {
		verb = "activate"
		done = "activated"
	}

	ids := bs.store.SelectedIDs()
	if len(ids) == 0 {
		bs.notify.Warning("Please select users to " + verb)
		return nil, nil
	}

	results := bs.fanOut(ids, func(id string) error {
		_, err := bs.api.SetStatus(ctx, id, active)
		if err != nil {
			bs.notify.Error("Failed to update user status")
			return err
		}
		bs.notify.Success(fmt.Sprintf("User %s successfully!", done))
		return nil
	})

	bs.store.ClearSelection()
	bs.notify.Success(fmt.Sprintf("%d users %s successfully", len(ids), done))

	bs.users.Load(ctx)
	if _, err := bs.users.Statistics(ctx); err != nil {
		bs.log.Warn("Statistics refresh after bulk status change failed", zap.Error(err))
	}

	return results, nil
}

// fanOut runs op for every identifier at once and waits for all of
// them to settle.
func (bs *bulkService) fanOut(ids []string, op func(id string) error) []response.BulkResult {
	results := make([]response.BulkResult, len(ids))

	var wg sync.WaitGroup
	for i, id := range ids {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()

			if err := op(id); err != nil {
				bs.log.Error("Bulk operation failed for user",
					zap.String("id", id),
					zap.Error(err),
				)
				results[i] = response.BulkResult{ID: id, Error: err.Error()}
				return
			}
			results[i] = response.BulkResult{ID: id, OK: true}
		}(i, id)
	}
	wg.Wait()

	return results
}

func (bs *bulkService) selectionState() *response.SelectionState {
	return &response.SelectionState{
		SelectedIDs: bs.store.SelectedIDs(),
		Count:       bs.store.SelectedCount(),
		SelectAll:   bs.store.SelectAll(),
	}
}
