package game

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// createTestGdataManager 创建用于测试的 gdata Manager
func createTestGdataManager(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	appName := fmt.Sprintf("airbattle_settings_test_%d", time.Now().UnixNano())
	manager, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		t.Fatalf("Failed to create gdata manager: %v", err)
	}

	t.Cleanup(func() {
		if homeDir, err := os.UserHomeDir(); err == nil {
			os.RemoveAll(filepath.Join(homeDir, ".local", "share", appName))
		}
	})
	return manager
}

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.SoundVolume != 0.8 {
		t.Errorf("SoundVolume: got %v, want 0.8", settings.SoundVolume)
	}
	if !settings.SoundEnabled {
		t.Error("SoundEnabled: got false, want true")
	}
	if settings.Fullscreen {
		t.Error("Fullscreen: got true, want false")
	}
}

func TestSettingsManagerNilGdata(t *testing.T) {
	sm := NewSettingsManager(nil)

	sm.SetSoundVolume(0.3)
	if err := sm.Save(); err != nil {
		t.Errorf("Save() without storage should not fail: %v", err)
	}
	if got := sm.GetSettings().SoundVolume; got != 0.3 {
		t.Errorf("SoundVolume: got %v, want 0.3", got)
	}
}

func TestSettingsManagerSaveAndLoad(t *testing.T) {
	manager := createTestGdataManager(t)

	sm := NewSettingsManager(manager)
	sm.SetSoundVolume(0.5)
	sm.SetSoundEnabled(false)
	sm.SetFullscreen(true)
	if err := sm.Save(); err != nil {
		t.Fatalf("Save() error: %v", err)
	}

	reloaded := NewSettingsManager(manager)
	got := reloaded.GetSettings()
	if got.SoundVolume != 0.5 || got.SoundEnabled || !got.Fullscreen {
		t.Errorf("reloaded settings mismatch: %+v", got)
	}
}

func TestSetSoundVolumeClamps(t *testing.T) {
	tests := []struct {
		name   string
		volume float64
		want   float64
	}{
		{"in range", 0.4, 0.4},
		{"below zero", -1, 0},
		{"above one", 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSettingsManager(nil)
			sm.SetSoundVolume(tt.volume)
			if got := sm.GetSettings().SoundVolume; got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
