package game

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

// MockScene is a mock implementation of the Scene interface for testing.
type MockScene struct {
	updateCalled bool
	drawCalled   bool
	deltaTime    float64
}

func (m *MockScene) Update(deltaTime float64) {
	m.updateCalled = true
	m.deltaTime = deltaTime
}

func (m *MockScene) Draw(screen *ebiten.Image) {
	m.drawCalled = true
}

func TestNewSceneManager(t *testing.T) {
	sm := NewSceneManager()
	if sm.GetCurrentScene() != nil {
		t.Error("Expected no active scene initially")
	}
}

func TestSceneManagerUpdateAndDraw(t *testing.T) {
	sm := NewSceneManager()
	mockScene := &MockScene{}
	sm.SwitchTo(mockScene)

	deltaTime := 0.016
	sm.Update(deltaTime)
	sm.Draw(nil)

	if !mockScene.updateCalled {
		t.Error("Scene's Update method was not called")
	}
	if mockScene.deltaTime != deltaTime {
		t.Errorf("Expected deltaTime %.3f, got %.3f", deltaTime, mockScene.deltaTime)
	}
	if !mockScene.drawCalled {
		t.Error("Scene's Draw method was not called")
	}
}

func TestSceneManagerNoScene(t *testing.T) {
	sm := NewSceneManager()
	// 没有活动场景时不应 panic
	sm.Update(0.016)
	sm.Draw(nil)
}

func TestSceneManagerRestart(t *testing.T) {
	tests := []struct {
		name    string
		factory SceneFactory
		want    bool
	}{
		{"no factory", nil, false},
		{"factory returns nil", func() Scene { return nil }, false},
		{"factory returns scene", func() Scene { return &MockScene{} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sm := NewSceneManager()
			previous := &MockScene{}
			sm.SwitchTo(previous)
			sm.SetSceneFactory(tt.factory)

			if got := sm.Restart(); got != tt.want {
				t.Fatalf("Restart() = %v, want %v", got, tt.want)
			}
			switched := sm.GetCurrentScene() != Scene(previous)
			if switched != tt.want {
				t.Errorf("scene switched = %v, want %v", switched, tt.want)
			}
		})
	}
}
