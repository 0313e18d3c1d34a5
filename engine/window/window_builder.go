package window

import "github.com/Carmen-Shannon/oxy-flycam/common"

// WindowBuilderOption is a functional option for configuring an engineWindow.
// Use the With* functions to create options.
type WindowBuilderOption func(w *engineWindow)

// WithTitle sets the title bar text.
//
// Parameters:
//   - title: the window title text
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithTitle(title string) WindowBuilderOption {
	return func(w *engineWindow) {
		w.title = title
	}
}

// WithSizeLimits bounds how far the user can resize the window. The initial size is
// clamped into the limits when the window opens.
// A non-positive value keeps the current limit for that edge.
//
// Parameters:
//   - minWidth, minHeight: smallest window size in pixels
//   - maxWidth, maxHeight: largest window size in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithSizeLimits(minWidth, minHeight, maxWidth, maxHeight int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.minWidth = common.Coalesce(max(minWidth, 0), w.minWidth)
		w.minHeight = common.Coalesce(max(minHeight, 0), w.minHeight)
		w.maxWidth = common.Coalesce(max(maxWidth, 0), w.maxWidth)
		w.maxHeight = common.Coalesce(max(maxHeight, 0), w.maxHeight)
	}
}

// WithWidth sets the width the window opens with.
//
// Parameters:
//   - width: initial width in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithWidth(width int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.width = width
	}
}

// WithHeight sets the height the window opens with.
//
// Parameters:
//   - height: initial height in pixels
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithHeight(height int) WindowBuilderOption {
	return func(w *engineWindow) {
		w.height = height
	}
}

// WithCursorCaptured captures the cursor as soon as the window opens.
//
// Parameters:
//   - captured: true to start with the cursor hidden and locked
//
// Returns:
//   - WindowBuilderOption: option function to apply
func WithCursorCaptured(captured bool) WindowBuilderOption {
	return func(w *engineWindow) {
		w.cursorCaptured = captured
	}
}
