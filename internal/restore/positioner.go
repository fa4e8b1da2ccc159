package restore

import (
	"context"
	"fmt"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
	"github.com/GriffinCanCode/hyprsession/internal/session"
)

// WindowMover is the part of the command client HyprPositioner needs.
type WindowMover interface {
	MoveWindowToWorkspaceSilent(ctx context.Context, address string, workspace int) (string, error)
	MoveWindow(ctx context.Context, address string, x, y int) (string, error)
	ResizeWindow(ctx context.Context, address string, w, h int) (string, error)
}

// HyprPositioner moves a claimed window back to its saved workspace and, for
// floating windows, its saved geometry. Tiled geometry is left to the layout.
type HyprPositioner struct {
	mover WindowMover
}

// NewHyprPositioner creates a positioner driving mover.
func NewHyprPositioner(mover WindowMover) *HyprPositioner {
	return &HyprPositioner{mover: mover}
}

// Restore implements Positioner. A rejected dispatch is an error.
func (p *HyprPositioner) Restore(ctx context.Context, live hypr.Window, saved session.ClientDescriptor) error {
	if live.Workspace.ID != saved.Workspace.ID {
		resp, err := p.mover.MoveWindowToWorkspaceSilent(ctx, live.Address, saved.Workspace.ID)
		if err := checked(resp, err); err != nil {
			return fmt.Errorf("move to workspace %d: %w", saved.Workspace.ID, err)
		}
	}

	if !saved.Floating || !live.Floating {
		return nil
	}

	selector := "address:" + live.Address
	if live.At != saved.At {
		resp, err := p.mover.MoveWindow(ctx, selector, saved.At[0], saved.At[1])
		if err := checked(resp, err); err != nil {
			return fmt.Errorf("move window: %w", err)
		}
	}
	if live.Size != saved.Size {
		resp, err := p.mover.ResizeWindow(ctx, selector, saved.Size[0], saved.Size[1])
		if err := checked(resp, err); err != nil {
			return fmt.Errorf("resize window: %w", err)
		}
	}
	return nil
}

func checked(resp string, err error) error {
	if err != nil {
		return err
	}
	return hypr.CheckResponse(resp)
}
