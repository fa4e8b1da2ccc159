package restore

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
	"github.com/GriffinCanCode/hyprsession/internal/session"
)

func TestHyprPositioner(t *testing.T) {
	tiled := func(ws int) hypr.Window { return window("0xa", "kitty", ws) }
	floating := func(ws int, at, size [2]int) hypr.Window {
		w := window("0xa", "kitty", ws)
		w.Floating = true
		w.At, w.Size = at, size
		return w
	}
	desc := func(ws int, floating bool, at, size [2]int) session.ClientDescriptor {
		d := saved("kitty", ws)
		d.Floating, d.At, d.Size = floating, at, size
		return d
	}

	tests := []struct {
		name   string
		live   hypr.Window
		saved  session.ClientDescriptor
		expect func(m *mockMover)
	}{
		{
			name:   "same workspace tiled does nothing",
			live:   tiled(1),
			saved:  desc(1, false, [2]int{}, [2]int{}),
			expect: func(*mockMover) {},
		},
		{
			name:  "moves to saved workspace",
			live:  tiled(1),
			saved: desc(3, false, [2]int{}, [2]int{}),
			expect: func(m *mockMover) {
				m.On("MoveWindowToWorkspaceSilent", mock.Anything, "0xa", 3).Return("ok", nil).Once()
			},
		},
		{
			name:  "floating geometry restored",
			live:  floating(2, [2]int{0, 0}, [2]int{400, 300}),
			saved: desc(2, true, [2]int{50, 60}, [2]int{800, 600}),
			expect: func(m *mockMover) {
				m.On("MoveWindow", mock.Anything, "address:0xa", 50, 60).Return("ok", nil).Once()
				m.On("ResizeWindow", mock.Anything, "address:0xa", 800, 600).Return("ok", nil).Once()
			},
		},
		{
			name:  "floating geometry unchanged",
			live:  floating(2, [2]int{50, 60}, [2]int{800, 600}),
			saved: desc(2, true, [2]int{50, 60}, [2]int{800, 600}),
			expect: func(*mockMover) {},
		},
		{
			name:   "saved floating but live tiled keeps layout",
			live:   tiled(2),
			saved:  desc(2, true, [2]int{50, 60}, [2]int{800, 600}),
			expect: func(*mockMover) {},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mover := newMockMover(t)
			tt.expect(mover)

			err := NewHyprPositioner(mover).Restore(context.Background(), tt.live, tt.saved)
			require.NoError(t, err)
		})
	}
}

func TestHyprPositionerErrors(t *testing.T) {
	t.Run("transport error", func(t *testing.T) {
		mover := newMockMover(t)
		boom := errors.New("broken pipe")
		mover.On("MoveWindowToWorkspaceSilent", mock.Anything, "0xa", 4).Return("", boom).Once()

		err := NewHyprPositioner(mover).Restore(context.Background(), window("0xa", "kitty", 1), saved("kitty", 4))
		assert.ErrorIs(t, err, boom)
	})

	t.Run("rejected dispatch", func(t *testing.T) {
		mover := newMockMover(t)
		mover.On("MoveWindowToWorkspaceSilent", mock.Anything, "0xa", 4).Return("No such window found", nil).Once()

		err := NewHyprPositioner(mover).Restore(context.Background(), window("0xa", "kitty", 1), saved("kitty", 4))
		assert.ErrorIs(t, err, hypr.ErrResponse)
	})
}
