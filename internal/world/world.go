package world

import (
	"fmt"

	"github.com/lpautet/mud-r-sub003/internal/model"
)

// World — arena всех сущностей мира: предметы, персонажи, комнаты, прототипы.
// Все перекрёстные ссылки между сущностями идут через стабильные object ID;
// arena владеет памятью, остальной код заимствует указатели.
//
// Мир принадлежит одной goroutine игрового цикла: один тик обрабатывает одну
// команду до конца, поэтому мутации не нуждаются в блокировках.
type World struct {
	items map[uint32]*model.Item
	chars map[uint32]*model.Character
	rooms map[model.RoomID]*model.Room

	itemProtos map[model.ProtoID]*model.Item
	charProtos map[model.ProtoID]*model.Character

	ids   *ObjectIDGenerator
	clock Clock
}

// New creates an empty world.
func New() *World {
	return &World{
		items:      make(map[uint32]*model.Item),
		chars:      make(map[uint32]*model.Character),
		rooms:      make(map[model.RoomID]*model.Room),
		itemProtos: make(map[model.ProtoID]*model.Item),
		charProtos: make(map[model.ProtoID]*model.Character),
		ids:        NewObjectIDGenerator(),
	}
}

// Clock returns the world clock.
func (w *World) Clock() *Clock {
	return &w.clock
}

// AddRoom registers a room.
func (w *World) AddRoom(r *model.Room) {
	w.rooms[r.VNum] = r
}

// Room resolves a room vnum, nil if unknown.
func (w *World) Room(vnum model.RoomID) *model.Room {
	return w.rooms[vnum]
}

// AddItemProto registers an item prototype. The prototype itself never
// enters the arena; exemplars are manufactured from it with SpawnItem.
func (w *World) AddItemProto(p *model.Item) error {
	if _, dup := w.itemProtos[p.Proto]; dup {
		return fmt.Errorf("duplicate item prototype #%d", p.Proto)
	}
	w.itemProtos[p.Proto] = p
	return nil
}

// ItemProto resolves an item prototype by vnum, nil if unknown.
func (w *World) ItemProto(vnum model.ProtoID) *model.Item {
	return w.itemProtos[vnum]
}

// AddCharProto registers a mobile prototype.
func (w *World) AddCharProto(p *model.Character) error {
	if _, dup := w.charProtos[p.Proto]; dup {
		return fmt.Errorf("duplicate mobile prototype #%d", p.Proto)
	}
	w.charProtos[p.Proto] = p
	return nil
}

// CharProto resolves a mobile prototype by vnum, nil if unknown.
func (w *World) CharProto(vnum model.ProtoID) *model.Character {
	return w.charProtos[vnum]
}

// SpawnItem manufactures a fresh exemplar of the prototype and registers it.
func (w *World) SpawnItem(vnum model.ProtoID) (*model.Item, error) {
	proto := w.itemProtos[vnum]
	if proto == nil {
		return nil, fmt.Errorf("unknown item prototype #%d", vnum)
	}
	it := proto.Clone()
	it.ID = w.ids.NextItemID()
	w.items[it.ID] = it
	return it, nil
}

// AddItem registers an already-built item (one not made from a prototype).
func (w *World) AddItem(it *model.Item) {
	if it.ID == 0 {
		it.ID = w.ids.NextItemID()
	}
	w.items[it.ID] = it
}

// Item resolves an item handle, nil if the item no longer exists.
func (w *World) Item(id uint32) *model.Item {
	return w.items[id]
}

// SpawnChar instantiates a mobile from its prototype into a room.
func (w *World) SpawnChar(vnum model.ProtoID, room model.RoomID) (*model.Character, error) {
	proto := w.charProtos[vnum]
	if proto == nil {
		return nil, fmt.Errorf("unknown mobile prototype #%d", vnum)
	}
	cp := *proto
	ch := &cp
	ch.Carrying = nil
	ch.ID = w.ids.NextNpcID()
	ch.Room = room
	w.chars[ch.ID] = ch
	return ch, nil
}

// AddChar registers a character built by the caller (players, tests).
func (w *World) AddChar(ch *model.Character) {
	if ch.ID == 0 {
		if ch.NPC {
			ch.ID = w.ids.NextNpcID()
		} else {
			ch.ID = w.ids.NextPlayerID()
		}
	}
	w.chars[ch.ID] = ch
}

// Char resolves a character handle, nil if gone.
func (w *World) Char(id uint32) *model.Character {
	return w.chars[id]
}

// GiveItem moves an item into a character's held sequence (appended at
// the end). The item must not be held by anyone else.
func (w *World) GiveItem(it *model.Item, ch *model.Character) {
	if it.CarriedBy != nil {
		it.CarriedBy.RemoveItem(it)
	}
	ch.AddItem(it)
}

// TakeItem removes an item from its holder without destroying it.
// Returns the index it occupied in the holder's sequence, -1 if unheld.
func (w *World) TakeItem(it *model.Item) int {
	if it.CarriedBy == nil {
		return -1
	}
	return it.CarriedBy.RemoveItem(it)
}

// ExtractItem destroys an item: removes it from its holder and the arena.
func (w *World) ExtractItem(it *model.Item) {
	if it.CarriedBy != nil {
		it.CarriedBy.RemoveItem(it)
	}
	delete(w.items, it.ID)
}

// Chars returns every live character in the world, unordered.
func (w *World) Chars() []*model.Character {
	out := make([]*model.Character, 0, len(w.chars))
	for _, ch := range w.chars {
		out = append(out, ch)
	}
	return out
}

// CharsInRoom returns every character standing in the room.
func (w *World) CharsInRoom(room model.RoomID) []*model.Character {
	var out []*model.Character
	for _, ch := range w.chars {
		if ch.Room == room {
			out = append(out, ch)
		}
	}
	return out
}
