package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	assert.Equal(t, "oxy-flycam", w.title)
	assert.Equal(t, 800, w.Width())
	assert.Equal(t, 600, w.Height())
	assert.Equal(t, [4]int{DefaultMinWidth, DefaultMinHeight, DefaultMaxWidth, DefaultMaxHeight},
		[4]int{w.minWidth, w.minHeight, w.maxWidth, w.maxHeight})
	assert.False(t, w.CursorCaptured())
}

func TestWithSizeLimits(t *testing.T) {
	tests := []struct {
		name       string
		options    []WindowBuilderOption
		wantLimits [4]int
		wantSize   [2]int
	}{
		{
			name:       "limits applied",
			options:    []WindowBuilderOption{WithSizeLimits(640, 480, 1920, 1080)},
			wantLimits: [4]int{640, 480, 1920, 1080},
			wantSize:   [2]int{800, 600},
		},
		{
			name:       "non-positive keeps defaults",
			options:    []WindowBuilderOption{WithSizeLimits(0, -1, 1280, 0)},
			wantLimits: [4]int{DefaultMinWidth, DefaultMinHeight, 1280, DefaultMaxHeight},
			wantSize:   [2]int{800, 600},
		},
		{
			name:       "initial size clamped up",
			options:    []WindowBuilderOption{WithWidth(100), WithHeight(50), WithSizeLimits(640, 480, 0, 0)},
			wantLimits: [4]int{640, 480, DefaultMaxWidth, DefaultMaxHeight},
			wantSize:   [2]int{640, 480},
		},
		{
			name:       "initial size clamped down",
			options:    []WindowBuilderOption{WithSizeLimits(0, 0, 1024, 768), WithWidth(4000), WithHeight(3000)},
			wantLimits: [4]int{DefaultMinWidth, DefaultMinHeight, 1024, 768},
			wantSize:   [2]int{1024, 768},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newEngineWindow(tt.options...)
			assert.Equal(t, tt.wantLimits, [4]int{w.minWidth, w.minHeight, w.maxWidth, w.maxHeight})
			assert.Equal(t, tt.wantSize, [2]int{w.Width(), w.Height()})
		})
	}
}

func TestWindowBuilderOptions(t *testing.T) {
	w := newEngineWindow(WithTitle("flycam"), WithCursorCaptured(true))
	assert.Equal(t, "flycam", w.title)
	assert.True(t, w.CursorCaptured())
}
