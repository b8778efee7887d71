package main

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lpautet/mud-r-sub003/internal/game/shop"
	"github.com/lpautet/mud-r-sub003/internal/model"
	"github.com/lpautet/mud-r-sub003/internal/testutil"
	"github.com/lpautet/mud-r-sub003/internal/world"
)

func loopFixture(t *testing.T) (*shop.Engine, *world.World, *model.Character) {
	t.Helper()
	w := world.New()
	e := shop.NewEngine(w, &testutil.RecordingMessenger{}, shop.DefaultConfig())
	player := &model.Character{Name: "Player", Room: model.Nowhere}
	w.AddChar(player)
	return e, w, player
}

func TestGameLoopAutosaves(t *testing.T) {
	e, w, player := loopFixture(t)
	commands := make(chan string)
	saved := make(chan struct{}, 16)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- gameLoop(ctx, time.Hour, 5*time.Millisecond, e, w, player, commands, func() {
			saved <- struct{}{}
		})
	}()

	select {
	case <-saved:
	case <-time.After(2 * time.Second):
		t.Fatal("autosave never fired")
	}

	cancel()
	require.ErrorIs(t, <-done, context.Canceled)
}

// Without persistence there is no autosave callback and the loop must
// run on the clock ticker alone.
func TestGameLoopAdvancesClockWithoutAutosave(t *testing.T) {
	e, w, player := loopFixture(t)
	w.Clock().SetHour(0)
	commands := make(chan string)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- gameLoop(ctx, 5*time.Millisecond, time.Hour, e, w, player, commands, nil)
	}()

	time.Sleep(100 * time.Millisecond)
	cancel()
	require.ErrorIs(t, <-done, context.Canceled)

	assert.Positive(t, w.Clock().Hour(), "clock never advanced")
}

func TestGameLoopStopsWhenInputCloses(t *testing.T) {
	e, w, player := loopFixture(t)
	commands := make(chan string)
	close(commands)

	err := gameLoop(context.Background(), time.Hour, 0, e, w, player, commands, nil)
	assert.NoError(t, err)
}

func TestSplitCommand(t *testing.T) {
	t.Parallel()

	cmd, arg := splitCommand("  BUY 5 bread ")
	assert.Equal(t, "buy", cmd)
	assert.Equal(t, "5 bread", arg)

	cmd, arg = splitCommand("list")
	assert.Equal(t, "list", cmd)
	assert.Empty(t, arg)

	cmd, _ = splitCommand("   ")
	assert.Empty(t, cmd)
}
