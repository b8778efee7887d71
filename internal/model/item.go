package model

import "strings"

// ProtoID — virtual number (vnum) прототипа предмета в мире.
// NoProto означает отсутствие прототипа (уникальный предмет).
type ProtoID int32

const NoProto ProtoID = -1

// ItemType — тип предмета.
// CircleMUD reference: structs.h ITEM_x defines.
type ItemType int32

const (
	ItemUndefined ItemType = iota
	ItemLight
	ItemScroll
	ItemWand
	ItemStaff
	ItemWeapon
	ItemFireWeapon
	ItemMissile
	ItemTreasure
	ItemArmor
	ItemPotion
	ItemWorn
	ItemOther
	ItemTrash
	ItemTrap
	ItemContainer
	ItemNote
	ItemDrinkCon
	ItemKey
	ItemFood
	ItemMoney
	ItemPen
	ItemBoat
	ItemFountain
)

// ItemTypeNames — отображаемые имена типов, индекс = значение ItemType.
var ItemTypeNames = []string{
	"UNDEFINED",
	"LIGHT",
	"SCROLL",
	"WAND",
	"STAFF",
	"WEAPON",
	"FIRE WEAPON",
	"MISSILE",
	"TREASURE",
	"ARMOR",
	"POTION",
	"WORN",
	"OTHER",
	"TRASH",
	"TRAP",
	"CONTAINER",
	"NOTE",
	"LIQ CONTAINER",
	"KEY",
	"FOOD",
	"MONEY",
	"PEN",
	"BOAT",
	"FOUNTAIN",
}

// String returns the display name of the item type.
func (t ItemType) String() string {
	if int(t) < 0 || int(t) >= len(ItemTypeNames) {
		return "UNKNOWN"
	}
	return ItemTypeNames[t]
}

// LookupItemType resolves a display name (case-insensitive) to an ItemType.
func LookupItemType(name string) (ItemType, bool) {
	for i, n := range ItemTypeNames {
		if strings.EqualFold(name, n) {
			return ItemType(i), true
		}
	}
	return ItemUndefined, false
}

// ExtraFlags — битовая маска дополнительных свойств предмета.
type ExtraFlags uint32

const (
	FlagGlow ExtraFlags = 1 << iota
	FlagHum
	FlagNoRent
	FlagNoDonate
	FlagNoInvis
	FlagInvisible
	FlagMagic
	FlagNoDrop
	FlagBless
	FlagAntiGood
	FlagAntiEvil
	FlagAntiNeutral
	FlagAntiMage
	FlagAntiCleric
	FlagAntiThief
	FlagAntiWarrior
	FlagNoSell
	FlagCursed
)

// ExtraFlagNames — имена флагов, индекс = номер бита.
// Used both for display and as the word vocabulary of shop keyword expressions.
var ExtraFlagNames = []string{
	"GLOW",
	"HUM",
	"NO_RENT",
	"NO_DONATE",
	"NO_INVIS",
	"INVISIBLE",
	"MAGIC",
	"NO_DROP",
	"BLESS",
	"ANTI_GOOD",
	"ANTI_EVIL",
	"ANTI_NEUTRAL",
	"ANTI_MAGE",
	"ANTI_CLERIC",
	"ANTI_THIEF",
	"ANTI_WARRIOR",
	"NO_SELL",
	"CURSED",
}

// LookupExtraFlag resolves a flag name (case-insensitive) to its bit.
func LookupExtraFlag(name string) (ExtraFlags, bool) {
	for i, n := range ExtraFlagNames {
		if strings.EqualFold(name, n) {
			return 1 << uint(i), true
		}
	}
	return 0, false
}

// DrinkNames — названия жидкостей для LIQ CONTAINER (индекс = values[2]).
var DrinkNames = []string{
	"water",
	"beer",
	"wine",
	"ale",
	"dark ale",
	"whisky",
	"lemonade",
	"firebreather",
	"local speciality",
	"slime mold juice",
	"milk",
	"tea",
	"coffee",
	"blood",
	"salt water",
	"clear water",
}

// MaxItemAffects — число affect-слотов на предмете.
const MaxItemAffects = 6

// ItemAffect — один (location, modifier) слот предмета.
type ItemAffect struct {
	Location int8
	Modifier int16
}

// Value slot indices. Meaning depends on the item type:
// wand/staff — ValMaxCharges/ValCharges, drink container — ValCapacity holds the
// remaining amount and ValLiquid the liquid index.
const (
	ValMaxCharges = 1
	ValCharges    = 2
	ValCapacity   = 1
	ValLiquid     = 2
)

// Item — конкретный экземпляр предмета в мире.
// Владеет им arena (world); прочий код работает только с заимствованными указателями.
type Item struct {
	ID        uint32 // arena object ID, 0 until spawned
	Proto     ProtoID
	Type      ItemType
	Name      string // keyword list, e.g. "sword long"
	ShortDesc string // "a long sword"
	Cost      int32
	Weight    int32
	Extra     ExtraFlags
	Values    [4]int32
	Affects   [MaxItemAffects]ItemAffect

	CarriedBy *Character // nil when not held
}

// HasFlag reports whether the extra-flag bit is set.
func (it *Item) HasFlag(f ExtraFlags) bool {
	return it.Extra&f != 0
}

// IsDepletable reports whether the item is a charge-limited magic item.
func (it *Item) IsDepletable() bool {
	return it.Type == ItemWand || it.Type == ItemStaff
}

// Charges returns remaining charges for wands and staves.
func (it *Item) Charges() int32 {
	return it.Values[ValCharges]
}

// IdenticalTo reports whether two items are logically the same goods:
// same prototype, cost, extra flags and affect slots. Such items are
// interchangeable for trading and must stay contiguous in a keeper's
// inventory.
// CircleMUD reference: shop.c same_obj().
func (it *Item) IdenticalTo(other *Item) bool {
	if it == nil || other == nil {
		return it == other
	}
	if it.Proto != other.Proto {
		return false
	}
	if it.Cost != other.Cost {
		return false
	}
	if it.Extra != other.Extra {
		return false
	}
	for i := range it.Affects {
		if it.Affects[i] != other.Affects[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the item with a zero arena ID and no owner.
// Used when manufacturing a fresh exemplar from a prototype.
func (it *Item) Clone() *Item {
	cp := *it
	cp.ID = 0
	cp.CarriedBy = nil
	return &cp
}
