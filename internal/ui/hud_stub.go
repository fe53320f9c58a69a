//go:build !ebiten

package ui

import (
	"context"

	"life-slots/internal/slots"
)

// Occupancy reports which slots hold a snapshot.
type Occupancy interface {
	Occupancy(ctx context.Context) [slots.Count]bool
}

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(context.Context, Controller, Occupancy, int, int64) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(int) {}

// Do is a no-op in the headless build.
func (h *HUD) Do(Button) {}

// SetStatus is a no-op in the headless build.
func (h *HUD) SetStatus(string, error) {}

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int, int) {}
