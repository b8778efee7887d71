// Package shop implements the keeper trading engine: declarative
// accept-rules over item keywords and flags, charisma-adjusted pricing,
// keeper inventory consolidation and the buy/sell/value/list verbs.
//
// CircleMUD reference: shop.c (the Circle 3.0 shop rewrite by Jeff Fink).
package shop

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lpautet/mud-r-sub003/internal/comm"
	"github.com/lpautet/mud-r-sub003/internal/model"
	"github.com/lpautet/mud-r-sub003/internal/world"
)

// Trade restriction bits: whom the shop refuses to trade with.
type TradeRestriction int32

const (
	TradeNoGood TradeRestriction = 1 << iota
	TradeNoEvil
	TradeNoNeutral
	TradeNoMagicUser
	TradeNoCleric
	TradeNoThief
	TradeNoWarrior
)

// TradeLetters — подписи ограничений для админского листинга
// (сначала мировоззрения, затем классы), индекс = номер бита.
var TradeLetters = []string{
	"Good",
	"Evil",
	"Neutral",
	"Magic User",
	"Cleric",
	"Thief",
	"Warrior",
}

// Keeper capability bits.
const (
	WillStartFight int32 = 1 << iota
	WillBankMoney
)

// ShopBits — имена capability-битов, индекс = номер бита.
var ShopBits = []string{"WILL_FIGHT", "USES_BANK"}

// Default bank smoothing bounds for the keeper's on-hand gold.
const (
	MinOutsideBank int32 = 5000
	MaxOutsideBank int32 = 15000
)

// AcceptRule — одно правило приёма товара: тип предмета плюс необязательное
// keyword-выражение. Правила проверяются по порядку, первое совпадение решает.
type AcceptRule struct {
	Type     model.ItemType
	Keywords string // boolean expression over flag names and item keywords
}

// Messages — семь реплик кипера из определения магазина.
// %s подставляется именем собеседника, %d — суммой золота.
type Messages struct {
	NoSuchItemKeeper  string // keeper hasn't got the item
	NoSuchItemPlayer  string // player hasn't got the item
	DoNotBuy          string // keeper doesn't trade in such things
	MissingCashKeeper string // keeper can't afford the purchase
	MissingCashPlayer string // player can't afford the purchase
	Buy               string // after a successful buy (%s, %d)
	Sell              string // after a successful sell (%s, %d)
}

// Shop — определение магазина, загруженное на старте. Неизменяемо в рантайме
// за исключением двух счётчиков: BankAccount и sortedPrefix.
type Shop struct {
	VNum       int32
	Producing  []model.ProtoID
	ProfitBuy  float64
	ProfitSell float64
	Rules      []AcceptRule
	Messages   Messages
	Temper     int32
	Bitvector  int32
	Keeper     model.ProtoID // mobile prototype of the proprietor
	WithWho    TradeRestriction
	Rooms      []model.RoomID
	Open1      int32
	Close1     int32
	Open2      int32
	Close2     int32

	// BankAccount — off-ledger gold reserve beyond the keeper's on-hand gold.
	BankAccount int32

	// Secondary — необязательная вторичная процедура кипера.
	// Движок делегирует ей команду прежде своей обработки; обработчик с
	// IsDefault()==true никогда не вызывается (он и есть движок).
	Secondary Handler

	// sortedPrefix — сколько предметов от начала инвентаря кипера уже
	// удовлетворяют инварианту группировки.
	sortedPrefix int32
}

func (s *Shop) WillFight() bool { return s.Bitvector&WillStartFight != 0 }
func (s *Shop) UsesBank() bool  { return s.Bitvector&WillBankMoney != 0 }

func (s *Shop) NoTradeGood() bool      { return s.WithWho&TradeNoGood != 0 }
func (s *Shop) NoTradeEvil() bool      { return s.WithWho&TradeNoEvil != 0 }
func (s *Shop) NoTradeNeutral() bool   { return s.WithWho&TradeNoNeutral != 0 }
func (s *Shop) NoTradeMagicUser() bool { return s.WithWho&TradeNoMagicUser != 0 }
func (s *Shop) NoTradeCleric() bool    { return s.WithWho&TradeNoCleric != 0 }
func (s *Shop) NoTradeThief() bool     { return s.WithWho&TradeNoThief != 0 }
func (s *Shop) NoTradeWarrior() bool   { return s.WithWho&TradeNoWarrior != 0 }

// InRoom reports whether the shop is reachable from the room.
func (s *Shop) InRoom(room model.RoomID) bool {
	for _, r := range s.Rooms {
		if r == room {
			return true
		}
	}
	return false
}

// SortedPrefix returns the consolidation counter (tests, admin display).
func (s *Shop) SortedPrefix() int32 {
	return s.sortedPrefix
}

// ResetSort invalidates the consolidation state, forcing a full re-sort
// on the next trade. Called when the keeper's goods were reordered
// behind the engine's back.
func (s *Shop) ResetSort() {
	s.sortedPrefix = 0
}

// Config — настройки движка.
type Config struct {
	BankMin int32 // on-hand gold below this draws from the bank reserve
	BankMax int32 // on-hand gold above this overflows into the bank reserve
}

// DefaultConfig returns the stock bank smoothing bounds.
func DefaultConfig() Config {
	return Config{BankMin: MinOutsideBank, BankMax: MaxOutsideBank}
}

// Engine — торговый движок. Владеет реестром магазинов; мир и канал
// сообщений внедряются на старте.
type Engine struct {
	world    *world.World
	msg      comm.Messenger
	shops    []*Shop
	byKeeper map[model.ProtoID]*Shop
	bankMin  int32
	bankMax  int32
}

// NewEngine creates a trading engine bound to a world and a messenger.
func NewEngine(w *world.World, msg comm.Messenger, cfg Config) *Engine {
	if cfg.BankMin == 0 && cfg.BankMax == 0 {
		cfg = DefaultConfig()
	}
	return &Engine{
		world:    w,
		msg:      msg,
		byKeeper: make(map[model.ProtoID]*Shop),
		bankMin:  cfg.BankMin,
		bankMax:  cfg.BankMax,
	}
}

// Register adds a shop to the engine. Every keeper runs at most one shop.
func (e *Engine) Register(s *Shop) error {
	if _, dup := e.byKeeper[s.Keeper]; dup {
		return fmt.Errorf("keeper #%d already runs a shop", s.Keeper)
	}
	e.shops = append(e.shops, s)
	e.byKeeper[s.Keeper] = s
	return nil
}

// Shops returns all registered shops in registration order.
func (e *Engine) Shops() []*Shop {
	return e.shops
}

// ShopForKeeper resolves the shop run by the keeper, nil if none.
func (e *Engine) ShopForKeeper(keeper *model.Character) *Shop {
	return e.byKeeper[keeper.Proto]
}

// ShopAt returns the first shop reachable from the room, nil if none.
func (e *Engine) ShopAt(room model.RoomID) *Shop {
	for _, s := range e.shops {
		if s.InRoom(room) {
			return s
		}
	}
	return nil
}

// expandTemplate substitutes a keeper message template: the literal
// %s becomes the addressee's name, %d the gold amount. Kept as plain
// replacement — the templates are data, not format strings.
func expandTemplate(tmpl, name string, amount int32) string {
	out := strings.ReplaceAll(tmpl, "%s", name)
	return strings.ReplaceAll(out, "%d", strconv.FormatInt(int64(amount), 10))
}
