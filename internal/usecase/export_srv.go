package usecase

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"time"

	"user-admin/internal/dto/response"
	"user-admin/internal/state"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"go.uber.org/zap"
)

// ExportService serializes the canonical in-memory list to CSV. The
// filtered view on screen does not matter here, export always covers
// the last full load.
type ExportService interface {
	CSV() ([]byte, string, error)
}

type exportService struct {
	store  *state.Store
	notify notify.Notifier
	log    *zap.Logger
}

func NewExportService(store *state.Store, notifier notify.Notifier, log *zap.Logger) ExportService {
	return &exportService{
		store:  store,
		notify: notifier,
		log:    log,
	}
}

var csvHeader = []string{
	"ID", "Email", "First Name", "Last Name", "Phone Number",
	"Address", "Role", "Status", "Created At", "Updated At",
}

// CSV returns the serialized list and the dated download filename.
func (es *exportService) CSV() ([]byte, string, error) {
	users := es.store.Users()

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvHeader); err != nil {
		es.notify.Error("Failed to export users")
		return nil, "", fmt.Errorf("write csv header: %w", err)
	}

	for _, user := range users {
		phone := ""
		if user.PhoneNumber != nil {
			phone = *user.PhoneNumber
		}
		address := ""
		if user.Address != nil {
			address = *user.Address
		}

		row := []string{
			user.ID,
			user.Email,
			user.FirstName,
			user.LastName,
			phone,
			address,
			string(user.Role),
			response.StatusLabel(user.Active),
			utils.FormatDateOnly(user.CreatedAt),
			utils.FormatDateOnly(user.UpdatedAt),
		}
		if err := w.Write(row); err != nil {
			es.notify.Error("Failed to export users")
			return nil, "", fmt.Errorf("write csv row for user %s: %w", user.ID, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		es.notify.Error("Failed to export users")
		return nil, "", fmt.Errorf("flush csv: %w", err)
	}

	filename := fmt.Sprintf("users_export_%s.csv", time.Now().Format("2006-01-02"))

	es.log.Info("Users exported", zap.Int("count", len(users)), zap.String("filename", filename))
	es.notify.Success("Users exported successfully!")

	return buf.Bytes(), filename, nil
}
