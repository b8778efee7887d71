package data

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lpautet/mud-r-sub003/internal/game/shop"
	"github.com/lpautet/mud-r-sub003/internal/model"
	"github.com/lpautet/mud-r-sub003/internal/world"
)

// shopFile — корневой документ shops.yaml.
type shopFile struct {
	Shops []shopDef `yaml:"shops"`
}

// shopDef — определение магазина в YAML.
type shopDef struct {
	VNum       int32    `yaml:"vnum"`
	Producing  []int32  `yaml:"producing"`
	ProfitBuy  float64  `yaml:"profit_buy"`
	ProfitSell float64  `yaml:"profit_sell"`
	Buys       []buyDef `yaml:"buys"`
	Messages   msgDef   `yaml:"messages"`
	Temper     int32    `yaml:"temper"`
	Flags      []string `yaml:"flags"`
	Keeper     int32    `yaml:"keeper"`
	Refuse     []string `yaml:"refuse"`
	Rooms      []int32  `yaml:"rooms"`
	Open1      int32    `yaml:"open1"`
	Close1     int32    `yaml:"close1"`
	Open2      int32    `yaml:"open2"`
	Close2     int32    `yaml:"close2"`
}

type buyDef struct {
	Type     string `yaml:"type"`
	Keywords string `yaml:"keywords"`
}

type msgDef struct {
	NoSuchItemKeeper  string `yaml:"no_such_item_keeper"`
	NoSuchItemPlayer  string `yaml:"no_such_item_player"`
	DoNotBuy          string `yaml:"do_not_buy"`
	MissingCashKeeper string `yaml:"missing_cash_keeper"`
	MissingCashPlayer string `yaml:"missing_cash_player"`
	Buy               string `yaml:"buy"`
	Sell              string `yaml:"sell"`
}

// refuseNames — имена категорий покупателей для поля refuse,
// индекс = номер бита TradeRestriction.
var refuseNames = []string{
	"GOOD",
	"EVIL",
	"NEUTRAL",
	"MAGIC_USER",
	"CLERIC",
	"THIEF",
	"WARRIOR",
}

// checkTemplate validates a keeper message template: at most one %s
// (addressee name), at most one %d (gold, buy/sell confirmations only),
// %% for a literal percent, nothing else.
func checkTemplate(tmpl string, allowGold bool) error {
	var ss, ds int
	for i := 0; i < len(tmpl); i++ {
		if tmpl[i] != '%' {
			continue
		}
		i++
		if i >= len(tmpl) {
			return fmt.Errorf("dangling %% at end of template")
		}
		switch tmpl[i] {
		case 's':
			ss++
		case 'd':
			if !allowGold {
				return fmt.Errorf("%%d not allowed in this template")
			}
			ds++
		case '%':
		default:
			return fmt.Errorf("illegal specifier %%%c", tmpl[i])
		}
	}
	if ss > 1 || ds > 1 {
		return fmt.Errorf("too many specifiers (%d %%s, %d %%d)", ss, ds)
	}
	return nil
}

func (def shopDef) messages() (shop.Messages, error) {
	checks := []struct {
		name      string
		tmpl      string
		allowGold bool
	}{
		{"no_such_item_keeper", def.Messages.NoSuchItemKeeper, false},
		{"no_such_item_player", def.Messages.NoSuchItemPlayer, false},
		{"do_not_buy", def.Messages.DoNotBuy, false},
		{"missing_cash_keeper", def.Messages.MissingCashKeeper, false},
		{"missing_cash_player", def.Messages.MissingCashPlayer, false},
		{"buy", def.Messages.Buy, true},
		{"sell", def.Messages.Sell, true},
	}
	for _, c := range checks {
		if c.tmpl == "" {
			return shop.Messages{}, fmt.Errorf("message %s is empty", c.name)
		}
		if err := checkTemplate(c.tmpl, c.allowGold); err != nil {
			return shop.Messages{}, fmt.Errorf("message %s: %w", c.name, err)
		}
	}
	return shop.Messages{
		NoSuchItemKeeper:  def.Messages.NoSuchItemKeeper,
		NoSuchItemPlayer:  def.Messages.NoSuchItemPlayer,
		DoNotBuy:          def.Messages.DoNotBuy,
		MissingCashKeeper: def.Messages.MissingCashKeeper,
		MissingCashPlayer: def.Messages.MissingCashPlayer,
		Buy:               def.Messages.Buy,
		Sell:              def.Messages.Sell,
	}, nil
}

func (def shopDef) build(w *world.World) (*shop.Shop, error) {
	if def.ProfitBuy < 1.0 {
		return nil, fmt.Errorf("profit_buy %.2f below 1.0", def.ProfitBuy)
	}
	if def.ProfitSell > def.ProfitBuy {
		return nil, fmt.Errorf("profit_sell %.2f above profit_buy %.2f", def.ProfitSell, def.ProfitBuy)
	}

	if w.CharProto(model.ProtoID(def.Keeper)) == nil {
		return nil, fmt.Errorf("unknown keeper mobile #%d", def.Keeper)
	}

	var producing []model.ProtoID
	for _, vnum := range def.Producing {
		if w.ItemProto(model.ProtoID(vnum)) == nil {
			return nil, fmt.Errorf("unknown produced item #%d", vnum)
		}
		producing = append(producing, model.ProtoID(vnum))
	}

	var rules []shop.AcceptRule
	for _, b := range def.Buys {
		typ, ok := model.LookupItemType(b.Type)
		if !ok {
			return nil, fmt.Errorf("unknown item type %q in accept rule", b.Type)
		}
		if err := shop.CheckExpression(b.Keywords); err != nil {
			return nil, fmt.Errorf("accept rule %q: %w", b.Keywords, err)
		}
		rules = append(rules, shop.AcceptRule{Type: typ, Keywords: b.Keywords})
	}

	msgs, err := def.messages()
	if err != nil {
		return nil, err
	}

	var bits int32
	for _, name := range def.Flags {
		idx := -1
		for i, n := range shop.ShopBits {
			if strings.EqualFold(name, n) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown shop flag %q", name)
		}
		bits |= 1 << idx
	}

	var withWho shop.TradeRestriction
	for _, name := range def.Refuse {
		idx := -1
		for i, n := range refuseNames {
			if strings.EqualFold(name, n) {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, fmt.Errorf("unknown customer category %q", name)
		}
		withWho |= 1 << idx
	}

	var rooms []model.RoomID
	for _, vnum := range def.Rooms {
		if w.Room(model.RoomID(vnum)) == nil {
			return nil, fmt.Errorf("unknown room #%d", vnum)
		}
		rooms = append(rooms, model.RoomID(vnum))
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("shop has no rooms")
	}

	return &shop.Shop{
		VNum:       def.VNum,
		Producing:  producing,
		ProfitBuy:  def.ProfitBuy,
		ProfitSell: def.ProfitSell,
		Rules:      rules,
		Messages:   msgs,
		Temper:     def.Temper,
		Bitvector:  bits,
		Keeper:     model.ProtoID(def.Keeper),
		WithWho:    withWho,
		Rooms:      rooms,
		Open1:      def.Open1,
		Close1:     def.Close1,
		Open2:      def.Open2,
		Close2:     def.Close2,
	}, nil
}

// LoadShops грузит shops.yaml и регистрирует магазины в движке.
// Невалидный магазин логируется и пропускается; ошибкой считается
// только нечитаемый файл.
func LoadShops(e *shop.Engine, w *world.World, path string) error {
	var f shopFile
	if err := readYAML(path, &f); err != nil {
		return err
	}

	loaded := 0
	for _, def := range f.Shops {
		s, err := def.build(w)
		if err != nil {
			slog.Warn("skipping bad shop", "shop", def.VNum, "err", err)
			continue
		}
		if err := e.Register(s); err != nil {
			slog.Warn("skipping bad shop", "shop", def.VNum, "err", err)
			continue
		}
		loaded++
	}
	slog.Info("loaded shops", "count", loaded, "skipped", len(f.Shops)-loaded)
	return nil
}

// SpawnKeepers instantiates every registered shop's proprietor into its
// first room and stocks one exemplar of each produced item.
func SpawnKeepers(e *shop.Engine, w *world.World) error {
	for _, s := range e.Shops() {
		keeper, err := w.SpawnChar(s.Keeper, s.Rooms[0])
		if err != nil {
			return fmt.Errorf("shop #%d: %w", s.VNum, err)
		}
		for _, vnum := range s.Producing {
			it, err := w.SpawnItem(vnum)
			if err != nil {
				return fmt.Errorf("shop #%d stock: %w", s.VNum, err)
			}
			w.GiveItem(it, keeper)
		}
	}
	return nil
}
