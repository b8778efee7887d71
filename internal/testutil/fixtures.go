package testutil

import (
	"testing"

	"github.com/lpautet/mud-r-sub003/internal/game/shop"
	"github.com/lpautet/mud-r-sub003/internal/model"
	"github.com/lpautet/mud-r-sub003/internal/world"
)

// Well-known vnums of the test fixture world.
const (
	ShopRoom   model.RoomID  = 3008
	KeeperVNum model.ProtoID = 3000
	BreadVNum  model.ProtoID = 3010
	SwordVNum  model.ProtoID = 3020
	WandVNum   model.ProtoID = 3030
)

// DefaultMessages — реплики кипера в формате определения магазина.
var DefaultMessages = shop.Messages{
	NoSuchItemKeeper:  "%s Sorry, I don't stock that item.",
	NoSuchItemPlayer:  "%s You don't seem to have that.",
	DoNotBuy:          "%s I don't trade in such items.",
	MissingCashKeeper: "%s I can't afford that!",
	MissingCashPlayer: "%s You can't afford it!",
	Buy:               "%s That'll be %d coins, thanks.",
	Sell:              "%s I'll give you %d coins for that.",
}

// NewWorld builds the fixture world: the shop room, the keeper mobile
// prototype and three item prototypes (food, weapon, wand).
func NewWorld(t testing.TB) *world.World {
	t.Helper()
	w := world.New()
	w.Clock().SetHour(12)

	w.AddRoom(&model.Room{VNum: ShopRoom, Name: "The Bakery"})

	if err := w.AddCharProto(&model.Character{
		Proto:          KeeperVNum,
		Name:           "the baker",
		Keywords:       "baker keeper",
		NPC:            true,
		Level:          20,
		Charisma:       12,
		Gold:           1000,
		Room:           model.Nowhere,
		MaxCarryItems:  50,
		MaxCarryWeight: 1000,
	}); err != nil {
		t.Fatalf("adding keeper proto: %v", err)
	}

	protos := []*model.Item{
		{
			Proto:     BreadVNum,
			Type:      model.ItemFood,
			Name:      "bread loaf",
			ShortDesc: "a loaf of bread",
			Cost:      10,
			Weight:    1,
		},
		{
			Proto:     SwordVNum,
			Type:      model.ItemWeapon,
			Name:      "sword long",
			ShortDesc: "a long sword",
			Cost:      100,
			Weight:    10,
		},
		{
			Proto:     WandVNum,
			Type:      model.ItemWand,
			Name:      "wand oak",
			ShortDesc: "an oak wand",
			Cost:      500,
			Weight:    2,
			Values:    [4]int32{0, 5, 5, 0},
		},
	}
	for _, p := range protos {
		if err := w.AddItemProto(p); err != nil {
			t.Fatalf("adding item proto #%d: %v", p.Proto, err)
		}
	}
	return w
}

// NewShop returns an always-open shop run by the fixture keeper,
// producing bread and buying food and weapons.
func NewShop() *shop.Shop {
	return &shop.Shop{
		VNum:       1,
		Producing:  []model.ProtoID{BreadVNum},
		ProfitBuy:  1.2,
		ProfitSell: 0.8,
		Rules: []shop.AcceptRule{
			{Type: model.ItemFood},
			{Type: model.ItemWeapon},
		},
		Messages: DefaultMessages,
		Keeper:   KeeperVNum,
		Rooms:    []model.RoomID{ShopRoom},
		Open1:    0,
		Close1:   28,
		Open2:    0,
		Close2:   0,
	}
}

// NewEngine wires a fixture world, a recording messenger, an engine
// with one registered shop and its spawned keeper.
func NewEngine(t testing.TB) (*shop.Engine, *world.World, *RecordingMessenger, *model.Character, *shop.Shop) {
	t.Helper()
	w := NewWorld(t)
	msg := &RecordingMessenger{}
	e := shop.NewEngine(w, msg, shop.DefaultConfig())

	s := NewShop()
	if err := e.Register(s); err != nil {
		t.Fatalf("registering shop: %v", err)
	}

	keeper, err := w.SpawnChar(KeeperVNum, ShopRoom)
	if err != nil {
		t.Fatalf("spawning keeper: %v", err)
	}
	return e, w, msg, keeper, s
}

// NewPlayer creates a mortal customer standing in the shop room.
func NewPlayer(t testing.TB, w *world.World, name string, gold int32) *model.Character {
	t.Helper()
	ch := &model.Character{
		Name:           name,
		Keywords:       name,
		Level:          10,
		Class:          model.ClassWarrior,
		Charisma:       12,
		Gold:           gold,
		Room:           ShopRoom,
		MaxCarryItems:  20,
		MaxCarryWeight: 200,
	}
	w.AddChar(ch)
	return ch
}

// GiveItem spawns an exemplar of the prototype into a character's hands.
func GiveItem(t testing.TB, w *world.World, ch *model.Character, vnum model.ProtoID) *model.Item {
	t.Helper()
	it, err := w.SpawnItem(vnum)
	if err != nil {
		t.Fatalf("spawning item #%d: %v", vnum, err)
	}
	w.GiveItem(it, ch)
	return it
}
