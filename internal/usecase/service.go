package usecase

import (
	"user-admin/internal/data/remote"
	"user-admin/internal/state"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"go.uber.org/zap"
)

// Confirmer answers an interactive yes/no prompt. The adaptor derives
// the answer from the request; declining is a silent no-op, never an
// error.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmFunc func(prompt string) bool

func (f ConfirmFunc) Confirm(prompt string) bool { return f(prompt) }

type Service struct {
	User    UserService
	Search  SearchService
	Bulk    BulkService
	Export  ExportService
	Console ConsoleService
}

func NewService(api remote.UserAPI, store *state.Store, prefs *utils.Prefs, notifier notify.Notifier, log *zap.Logger) *Service {
	user := NewUserService(api, store, notifier, log)

	return &Service{
		User:    user,
		Search:  NewSearchService(api, store, user, notifier, log),
		Bulk:    NewBulkService(api, store, user, notifier, log),
		Export:  NewExportService(store, notifier, log),
		Console: NewConsoleService(store, prefs, notifier, log),
	}
}
