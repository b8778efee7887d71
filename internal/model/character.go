package model

// RoomID — virtual number комнаты.
type RoomID int32

const Nowhere RoomID = -1

// Class — класс персонажа (только для игроков; NPC классов не имеют).
type Class int8

const (
	ClassMagicUser Class = iota
	ClassCleric
	ClassThief
	ClassWarrior
)

// Immortal level thresholds.
// CircleMUD reference: structs.h LVL_x defines.
const (
	LvlImmort int32 = 31
	LvlGod    int32 = 32
)

// Alignment thresholds: >= AlignGood is good, <= AlignEvil is evil.
const (
	AlignGood int32 = 350
	AlignEvil int32 = -350
)

// Character — персонаж мира (игрок или NPC, включая кипера магазина).
// Владеет им arena (world). Инвентарь — упорядоченная последовательность
// предметов; порядок значим для группировки товаров кипера.
type Character struct {
	ID        uint32 // arena object ID, 0 until spawned
	Proto     ProtoID
	Name      string
	Keywords  string // name keyword list for matching
	NPC       bool
	Level     int32
	Class     Class
	Alignment int32
	Charisma  int32
	Gold      int32
	Room      RoomID

	Carrying    []*Item // held-item sequence, newest appended at the end
	carryWeight int32

	MaxCarryItems  int32
	MaxCarryWeight int32

	Sleeping      bool
	Invisible     bool
	SeesInvisible bool
	Charmed       bool
}

// IsGod reports whether the character bypasses trade restrictions and
// gold checks: a player of god level or above.
func (ch *Character) IsGod() bool {
	return !ch.NPC && ch.Level >= LvlGod
}

// Awake reports whether the character can act.
func (ch *Character) Awake() bool {
	return !ch.Sleeping
}

func (ch *Character) IsGood() bool    { return ch.Alignment >= AlignGood }
func (ch *Character) IsEvil() bool    { return ch.Alignment <= AlignEvil }
func (ch *Character) IsNeutral() bool { return !ch.IsGood() && !ch.IsEvil() }

// CarryCount returns the number of held items.
func (ch *Character) CarryCount() int32 {
	return int32(len(ch.Carrying))
}

// CarryWeight returns the total weight of held items.
func (ch *Character) CarryWeight() int32 {
	return ch.carryWeight
}

// AddItem appends an item to the held sequence.
// Ownership bookkeeping only; use world.GiveItem in game code.
func (ch *Character) AddItem(it *Item) {
	ch.Carrying = append(ch.Carrying, it)
	ch.carryWeight += it.Weight
	it.CarriedBy = ch
}

// InsertItem places an item at the given position in the held sequence.
func (ch *Character) InsertItem(it *Item, idx int) {
	if idx < 0 || idx > len(ch.Carrying) {
		idx = len(ch.Carrying)
	}
	ch.Carrying = append(ch.Carrying, nil)
	copy(ch.Carrying[idx+1:], ch.Carrying[idx:])
	ch.Carrying[idx] = it
	ch.carryWeight += it.Weight
	it.CarriedBy = ch
}

// RemoveItem removes an item from the held sequence.
// Returns the index it occupied, or -1 if the character did not hold it.
func (ch *Character) RemoveItem(it *Item) int {
	for i, held := range ch.Carrying {
		if held == it {
			ch.Carrying = append(ch.Carrying[:i], ch.Carrying[i+1:]...)
			ch.carryWeight -= it.Weight
			it.CarriedBy = nil
			return i
		}
	}
	return -1
}

// RemoveItemAt removes and returns the item at the given position.
func (ch *Character) RemoveItemAt(idx int) *Item {
	it := ch.Carrying[idx]
	ch.Carrying = append(ch.Carrying[:idx], ch.Carrying[idx+1:]...)
	ch.carryWeight -= it.Weight
	it.CarriedBy = nil
	return it
}
