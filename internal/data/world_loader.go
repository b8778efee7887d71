// Package data loads the world definition files: rooms, item and mobile
// prototypes, and shop definitions. Files are YAML; loading is strict
// for world files and lenient for shops (a bad shop is logged and
// skipped so one typo does not take the whole world down).
package data

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/lpautet/mud-r-sub003/internal/model"
	"github.com/lpautet/mud-r-sub003/internal/world"
)

// itemFile — корневой документ items.yaml.
type itemFile struct {
	Items []itemDef `yaml:"items"`
}

// itemDef — прототип предмета в YAML.
type itemDef struct {
	VNum     int32       `yaml:"vnum"`
	Keywords string      `yaml:"keywords"`
	Short    string      `yaml:"short"`
	Type     string      `yaml:"type"`
	Cost     int32       `yaml:"cost"`
	Weight   int32       `yaml:"weight"`
	Extra    []string    `yaml:"extra"`
	Values   []int32     `yaml:"values"`
	Affects  []affectDef `yaml:"affects"`
}

type affectDef struct {
	Location int8  `yaml:"location"`
	Modifier int16 `yaml:"modifier"`
}

type npcFile struct {
	NPCs []npcDef `yaml:"npcs"`
}

// npcDef — прототип моба в YAML.
type npcDef struct {
	VNum      int32  `yaml:"vnum"`
	Keywords  string `yaml:"keywords"`
	Name      string `yaml:"name"`
	Level     int32  `yaml:"level"`
	Alignment int32  `yaml:"alignment"`
	Charisma  int32  `yaml:"charisma"`
	Gold      int32  `yaml:"gold"`
}

type roomFile struct {
	Rooms []roomDef `yaml:"rooms"`
}

type roomDef struct {
	VNum int32  `yaml:"vnum"`
	Name string `yaml:"name"`
}

func readYAML(path string, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

// LoadRooms регистрирует комнаты из rooms.yaml.
func LoadRooms(w *world.World, path string) error {
	var f roomFile
	if err := readYAML(path, &f); err != nil {
		return err
	}
	for _, def := range f.Rooms {
		w.AddRoom(&model.Room{VNum: model.RoomID(def.VNum), Name: def.Name})
	}
	slog.Info("loaded rooms", "count", len(f.Rooms))
	return nil
}

// LoadItemProtos регистрирует прототипы предметов из items.yaml.
func LoadItemProtos(w *world.World, path string) error {
	var f itemFile
	if err := readYAML(path, &f); err != nil {
		return err
	}
	for _, def := range f.Items {
		proto, err := def.build()
		if err != nil {
			return fmt.Errorf("item #%d: %w", def.VNum, err)
		}
		if err := w.AddItemProto(proto); err != nil {
			return err
		}
	}
	slog.Info("loaded item prototypes", "count", len(f.Items))
	return nil
}

func (def itemDef) build() (*model.Item, error) {
	typ, ok := model.LookupItemType(def.Type)
	if !ok {
		return nil, fmt.Errorf("unknown item type %q", def.Type)
	}

	var extra model.ExtraFlags
	for _, name := range def.Extra {
		bit, ok := model.LookupExtraFlag(name)
		if !ok {
			return nil, fmt.Errorf("unknown extra flag %q", name)
		}
		extra |= bit
	}

	if len(def.Values) > 4 {
		return nil, fmt.Errorf("too many value slots (%d, max 4)", len(def.Values))
	}
	if len(def.Affects) > model.MaxItemAffects {
		return nil, fmt.Errorf("too many affects (%d, max %d)", len(def.Affects), model.MaxItemAffects)
	}

	it := &model.Item{
		Proto:     model.ProtoID(def.VNum),
		Type:      typ,
		Name:      def.Keywords,
		ShortDesc: def.Short,
		Cost:      def.Cost,
		Weight:    def.Weight,
		Extra:     extra,
	}
	copy(it.Values[:], def.Values)
	for i, a := range def.Affects {
		it.Affects[i] = model.ItemAffect{Location: a.Location, Modifier: a.Modifier}
	}
	return it, nil
}

// LoadNPCProtos регистрирует прототипы мобов из npcs.yaml.
func LoadNPCProtos(w *world.World, path string) error {
	var f npcFile
	if err := readYAML(path, &f); err != nil {
		return err
	}
	for _, def := range f.NPCs {
		proto := &model.Character{
			Proto:          model.ProtoID(def.VNum),
			Name:           def.Name,
			Keywords:       def.Keywords,
			NPC:            true,
			Level:          def.Level,
			Alignment:      def.Alignment,
			Charisma:       def.Charisma,
			Gold:           def.Gold,
			Room:           model.Nowhere,
			MaxCarryItems:  50,
			MaxCarryWeight: 1000,
		}
		if err := w.AddCharProto(proto); err != nil {
			return err
		}
	}
	slog.Info("loaded mobile prototypes", "count", len(f.NPCs))
	return nil
}

// LoadWorld грузит все три мировых файла из каталога данных.
func LoadWorld(w *world.World, dir string) error {
	if err := LoadRooms(w, filepath.Join(dir, "rooms.yaml")); err != nil {
		return err
	}
	if err := LoadItemProtos(w, filepath.Join(dir, "items.yaml")); err != nil {
		return err
	}
	return LoadNPCProtos(w, filepath.Join(dir, "npcs.yaml"))
}
