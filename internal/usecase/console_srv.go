package usecase

import (
	"fmt"

	"user-admin/internal/dto/response"
	"user-admin/internal/state"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"go.uber.org/zap"
)

// ConsoleService covers the surface chrome: theme preference and tab
// navigation. The theme outlives the process in the prefs file, the
// active tab does not.
type ConsoleService interface {
	Theme() *response.ThemeResponse
	SetTheme(theme string) (*response.ThemeResponse, error)
	ActiveTab() *response.TabResponse
	SwitchTab(tab string) (*response.TabResponse, error)
}

type consoleService struct {
	store  *state.Store
	prefs  *utils.Prefs
	notify notify.Notifier
	log    *zap.Logger
}

func NewConsoleService(store *state.Store, prefs *utils.Prefs, notifier notify.Notifier, log *zap.Logger) ConsoleService {
	return &consoleService{
		store:  store,
		prefs:  prefs,
		notify: notifier,
		log:    log,
	}
}

func (cs *consoleService) Theme() *response.ThemeResponse {
	return &response.ThemeResponse{Theme: cs.prefs.Theme()}
}

func (cs *consoleService) SetTheme(theme string) (*response.ThemeResponse, error) {
	if err := cs.prefs.SetTheme(theme); err != nil {
		cs.log.Error("Failed to persist theme", zap.String("theme", theme), zap.Error(err))
		return nil, err
	}

	cs.notify.Success(fmt.Sprintf("Switched to %s theme", theme))
	return &response.ThemeResponse{Theme: theme}, nil
}

func (cs *consoleService) ActiveTab() *response.TabResponse {
	return &response.TabResponse{ActiveTab: cs.store.ActiveTab()}
}

func (cs *consoleService) SwitchTab(tab string) (*response.TabResponse, error) {
	switch tab {
	case state.TabUsers, state.TabCreate, state.TabSearch, state.TabStats:
	default:
		return nil, fmt.Errorf("invalid tab %q", tab)
	}

	cs.store.SetActiveTab(tab)
	return &response.TabResponse{ActiveTab: tab}, nil
}
