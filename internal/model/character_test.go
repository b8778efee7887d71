package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(proto ProtoID, weight int32) *Item {
	return &Item{Proto: proto, Weight: weight}
}

func TestInventoryOrderAndWeight(t *testing.T) {
	t.Parallel()

	ch := &Character{Name: "Ryla"}

	a := item(1, 10)
	b := item(2, 20)
	c := item(3, 5)

	ch.AddItem(a)
	ch.AddItem(b)
	ch.InsertItem(c, 1)

	require.Equal(t, []*Item{a, c, b}, ch.Carrying)
	assert.Equal(t, int32(3), ch.CarryCount())
	assert.Equal(t, int32(35), ch.CarryWeight())
	assert.Same(t, ch, a.CarriedBy)

	idx := ch.RemoveItem(c)
	assert.Equal(t, 1, idx)
	assert.Nil(t, c.CarriedBy)
	assert.Equal(t, int32(30), ch.CarryWeight())

	assert.Equal(t, -1, ch.RemoveItem(c), "already removed")

	got := ch.RemoveItemAt(0)
	assert.Same(t, a, got)
	require.Equal(t, []*Item{b}, ch.Carrying)
}

func TestInsertItemClampsIndex(t *testing.T) {
	t.Parallel()

	ch := &Character{}
	a := item(1, 1)
	b := item(2, 1)

	ch.InsertItem(a, 99)
	ch.InsertItem(b, -5)

	require.Equal(t, []*Item{a, b}, ch.Carrying)
}

func TestAlignmentAndGodhood(t *testing.T) {
	t.Parallel()

	assert.True(t, (&Character{Alignment: 350}).IsGood())
	assert.True(t, (&Character{Alignment: -350}).IsEvil())
	assert.True(t, (&Character{Alignment: 0}).IsNeutral())

	assert.True(t, (&Character{Level: LvlGod}).IsGod())
	assert.False(t, (&Character{Level: LvlImmort}).IsGod())
	assert.False(t, (&Character{Level: LvlGod, NPC: true}).IsGod(), "mobs are never gods")
}
