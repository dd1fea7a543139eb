package adaptor

import (
	"errors"
	"net/http"
	"strings"

	"user-admin/internal/data/remote"
	"user-admin/internal/usecase"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	User    *UserHandler
	Search  *SearchHandler
	Bulk    *BulkHandler
	Console *ConsoleHandler
}

func NewHandler(service *usecase.Service, toasts *notify.Buffer, log *zap.Logger) *Handler {
	return &Handler{
		User:    NewUserHandler(service.User, toasts, log),
		Search:  NewSearchHandler(service.Search, toasts, log),
		Bulk:    NewBulkHandler(service.Bulk, toasts, log),
		Console: NewConsoleHandler(service.Console, service.Export, toasts, log),
	}
}

// confirmFromRequest turns the confirm query flag into the interactive
// confirmation gate; absent means declined.
func confirmFromRequest(r *http.Request) usecase.Confirmer {
	return usecase.ConfirmFunc(func(prompt string) bool {
		return utils.ParseBool(r.URL.Query().Get("confirm"), false)
	})
}

// handleServiceError maps orchestration errors for mutation endpoints
func handleServiceError(w http.ResponseWriter, log *zap.Logger, toasts *notify.Buffer, err error, operation string) {
	errMsg := err.Error()

	var statusErr *remote.StatusError

	switch {
	case strings.Contains(errMsg, "validation failed"):
		log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil, toasts.Drain())

	case errors.As(err, &statusErr) && statusErr.StatusCode == http.StatusNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, errMsg, toasts.Drain())

	case strings.Contains(errMsg, "invalid"):
		log.Warn("Invalid input for "+operation, zap.Error(err))
		utils.ResponseBadRequest(w, errMsg, nil, toasts.Drain())

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, errMsg, toasts.Drain())
	}
}
