package restore

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/GriffinCanCode/hyprsession/internal/hypr"
	"github.com/GriffinCanCode/hyprsession/internal/session"
)

type mockCommander struct {
	mock.Mock
}

func newMockCommander(t *testing.T) *mockCommander {
	m := &mockCommander{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockCommander) Clients(ctx context.Context) ([]hypr.Window, error) {
	args := m.Called(ctx)
	windows, _ := args.Get(0).([]hypr.Window)
	return windows, args.Error(1)
}

func (m *mockCommander) ExecOnWorkspace(ctx context.Context, workspace int, program string) (string, error) {
	args := m.Called(ctx, workspace, program)
	return args.String(0), args.Error(1)
}

type mockPositioner struct {
	mock.Mock
}

func newMockPositioner(t *testing.T) *mockPositioner {
	m := &mockPositioner{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockPositioner) Restore(ctx context.Context, live hypr.Window, saved session.ClientDescriptor) error {
	args := m.Called(ctx, live, saved)
	return args.Error(0)
}

type mockNotifier struct {
	mock.Mock
}

func newMockNotifier(t *testing.T) *mockNotifier {
	m := &mockNotifier{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockNotifier) Notify(ctx context.Context, summary, body string) error {
	args := m.Called(ctx, summary, body)
	return args.Error(0)
}

type mockMover struct {
	mock.Mock
}

func newMockMover(t *testing.T) *mockMover {
	m := &mockMover{}
	m.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *mockMover) MoveWindowToWorkspaceSilent(ctx context.Context, address string, workspace int) (string, error) {
	args := m.Called(ctx, address, workspace)
	return args.String(0), args.Error(1)
}

func (m *mockMover) MoveWindow(ctx context.Context, address string, x, y int) (string, error) {
	args := m.Called(ctx, address, x, y)
	return args.String(0), args.Error(1)
}

func (m *mockMover) ResizeWindow(ctx context.Context, address string, w, h int) (string, error) {
	args := m.Called(ctx, address, w, h)
	return args.String(0), args.Error(1)
}
