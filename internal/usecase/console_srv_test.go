package usecase

import (
	"path/filepath"
	"testing"

	"user-admin/internal/state"
	"user-admin/pkg/notify"
	"user-admin/pkg/utils"

	"go.uber.org/zap"
)

func newConsoleService(t *testing.T) (ConsoleService, *state.Store, *notify.Buffer, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	store := state.NewStore()
	toasts := notify.NewBuffer()
	svc := NewConsoleService(store, utils.NewPrefs(path), toasts, zap.NewNop())
	return svc, store, toasts, path
}

func TestTheme_DefaultsToLight(t *testing.T) {
	svc, _, _, _ := newConsoleService(t)

	if got := svc.Theme().Theme; got != utils.ThemeLight {
		t.Fatalf("expected light default, got %q", got)
	}
}

func TestSetTheme_PersistsAcrossReload(t *testing.T) {
	svc, _, toasts, path := newConsoleService(t)

	resp, err := svc.SetTheme(utils.ThemeDark)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.Theme != utils.ThemeDark {
		t.Fatalf("expected dark, got %q", resp.Theme)
	}

	drained := toasts.Drain()
	if len(drained) != 1 || drained[0].Message != "Switched to dark theme" {
		t.Fatalf("unexpected toasts %v", drained)
	}

	// A fresh Prefs over the same file stands in for a new session.
	reloaded := utils.NewPrefs(path)
	if got := reloaded.Theme(); got != utils.ThemeDark {
		t.Fatalf("theme did not survive reload, got %q", got)
	}
}

func TestSetTheme_RejectsUnknown(t *testing.T) {
	svc, _, toasts, _ := newConsoleService(t)

	if _, err := svc.SetTheme("sepia"); err == nil {
		t.Fatal("expected error for unknown theme")
	}
	if got := toasts.Drain(); len(got) != 0 {
		t.Fatalf("rejected theme must not toast, got %v", got)
	}
	if svc.Theme().Theme != utils.ThemeLight {
		t.Fatal("rejected theme must not stick")
	}
}

func TestSwitchTab_ValidatesAndUpdatesStore(t *testing.T) {
	svc, store, _, _ := newConsoleService(t)

	resp, err := svc.SwitchTab(state.TabSearch)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if resp.ActiveTab != state.TabSearch {
		t.Fatalf("expected search tab, got %q", resp.ActiveTab)
	}
	if store.ActiveTab() != state.TabSearch {
		t.Fatal("store not updated")
	}

	if _, err := svc.SwitchTab("settings"); err == nil {
		t.Fatal("expected error for unknown tab")
	}
	if store.ActiveTab() != state.TabSearch {
		t.Fatal("unknown tab must not change state")
	}
}
