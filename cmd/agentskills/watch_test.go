package main

import (
	"context"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsManifestEvent(t *testing.T) {
	tests := []struct {
		name     string
		event    fsnotify.Event
		expected bool
	}{
		{"write to SKILL.md", fsnotify.Event{Name: "/skills/demo/SKILL.md", Op: fsnotify.Write}, true},
		{"create skill.md", fsnotify.Event{Name: "/skills/demo/skill.md", Op: fsnotify.Create}, true},
		{"remove SKILL.md", fsnotify.Event{Name: "/skills/demo/SKILL.md", Op: fsnotify.Remove}, true},
		{"rename SKILL.md", fsnotify.Event{Name: "/skills/demo/SKILL.md", Op: fsnotify.Rename}, true},
		{"chmod SKILL.md", fsnotify.Event{Name: "/skills/demo/SKILL.md", Op: fsnotify.Chmod}, false},
		{"other file", fsnotify.Event{Name: "/skills/demo/script.py", Op: fsnotify.Write}, false},
		{"editor swap file", fsnotify.Event{Name: "/skills/demo/.SKILL.md.swp", Op: fsnotify.Write}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, isManifestEvent(tt.event))
		})
	}
}

func TestDebounceEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	input := make(chan fsnotify.Event)
	output := debounceEvents(ctx, input, 50*time.Millisecond)

	for _, op := range []fsnotify.Op{fsnotify.Create, fsnotify.Write, fsnotify.Write} {
		input <- fsnotify.Event{Name: "SKILL.md", Op: op}
	}

	select {
	case event := <-output:
		assert.Equal(t, "SKILL.md", event.Name)
		assert.Equal(t, fsnotify.Write, event.Op)
	case <-time.After(2 * time.Second):
		t.Fatal("expected a debounced event")
	}

	select {
	case event := <-output:
		t.Fatalf("unexpected second event: %v", event)
	case <-time.After(150 * time.Millisecond):
	}
}

func TestDebounceEventsFlushesOnClose(t *testing.T) {
	input := make(chan fsnotify.Event)
	output := debounceEvents(context.Background(), input, time.Hour)

	input <- fsnotify.Event{Name: "skill.md", Op: fsnotify.Create}
	close(input)

	event, ok := <-output
	require.True(t, ok)
	assert.Equal(t, "skill.md", event.Name)

	_, ok = <-output
	assert.False(t, ok)
}

func TestDebounceEventsStopsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	output := debounceEvents(ctx, make(chan fsnotify.Event), time.Millisecond)
	cancel()

	select {
	case _, ok := <-output:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer did not stop")
	}
}

func TestValidateConfig(t *testing.T) {
	config := NewValidateConfig()
	assert.False(t, config.Watch)
	assert.Equal(t, 200, config.Debounce)
	assert.NoError(t, config.Validate())

	config.Debounce = -1
	err := config.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "debounce time cannot be negative: -1")
}
