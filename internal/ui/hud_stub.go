//go:build !ebiten

package ui

import "floodcross/internal/core"

// HUD is a no-op placeholder for headless builds.
type HUD struct{}

// NewHUD returns nil in the headless build.
func NewHUD(core.ParameterSource, int) *HUD { return nil }

// Update is a no-op in the headless build.
func (h *HUD) Update(Status, int) Action { return ActionNone }

// Draw is a no-op in the headless build.
func (h *HUD) Draw(any, int) {}
