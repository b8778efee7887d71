package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/lpautet/mud-r-sub003/internal/comm"
	"github.com/lpautet/mud-r-sub003/internal/config"
	"github.com/lpautet/mud-r-sub003/internal/data"
	"github.com/lpautet/mud-r-sub003/internal/db"
	"github.com/lpautet/mud-r-sub003/internal/game/shop"
	"github.com/lpautet/mud-r-sub003/internal/model"
	"github.com/lpautet/mud-r-sub003/internal/world"
)

const ConfigPath = "config/mudserver.yaml"

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("shutting down", "signal", sig)
		cancel()
	}()

	if err := run(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	// Configure slog
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	slog.Info("mud server starting")

	// Load config
	cfgPath := ConfigPath
	if p := os.Getenv("MUD_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.LoadServer(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	slog.Info("config loaded", "data_dir", cfg.DataDir, "db_enabled", cfg.Database.Enabled)

	// Boot the world
	w := world.New()
	w.Clock().SetHour(cfg.Clock.StartHour)
	if err := data.LoadWorld(w, cfg.DataDir); err != nil {
		return fmt.Errorf("loading world: %w", err)
	}

	// The console player drives the whole session.
	player := &model.Character{
		Name:           "Player",
		Keywords:       "player",
		Level:          10,
		Class:          model.ClassWarrior,
		Charisma:       12,
		Gold:           5000,
		MaxCarryItems:  20,
		MaxCarryWeight: 200,
	}

	engine := shop.NewEngine(w, comm.NewConsole(os.Stdout, player), shop.Config{
		BankMin: cfg.Shops.BankMin,
		BankMax: cfg.Shops.BankMax,
	})
	if err := data.LoadShops(engine, w, filepath.Join(cfg.DataDir, "shops.yaml")); err != nil {
		return fmt.Errorf("loading shops: %w", err)
	}
	if err := data.SpawnKeepers(engine, w); err != nil {
		return fmt.Errorf("spawning keepers: %w", err)
	}

	// Optional persistence
	var shopRepo *db.ShopRepository
	if cfg.Database.Enabled {
		database, err := db.New(ctx, cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connecting to database: %w", err)
		}
		defer database.Close()
		slog.Info("database connected")

		if err := db.RunMigrations(ctx, cfg.Database.DSN()); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		slog.Info("database migrations applied")

		shopRepo = db.NewShopRepository(database.Pool())
		if err := restoreShopState(ctx, shopRepo, engine, w); err != nil {
			return fmt.Errorf("restoring shop state: %w", err)
		}
	}

	// Drop the player into the first shop's room.
	if shops := engine.Shops(); len(shops) > 0 {
		player.Room = shops[0].Rooms[0]
	}
	w.AddChar(player)

	commands := make(chan string)

	// Autosave flushes the economy mid-session so a crash does not
	// roll back to boot state.
	var autosave func()
	if shopRepo != nil {
		autosave = func() {
			saveCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if err := saveShopState(saveCtx, shopRepo, engine, w); err != nil {
				slog.Error("shop state autosave failed", "err", err)
			}
		}
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return gameLoop(gctx,
			time.Duration(cfg.Clock.TickSeconds)*time.Second,
			time.Duration(cfg.Clock.AutosaveSeconds)*time.Second,
			engine, w, player, commands, autosave)
	})

	g.Go(func() error {
		return readInput(gctx, commands)
	})

	err = g.Wait()

	// Final save regardless of how the loops ended.
	if shopRepo != nil {
		saveCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if saveErr := saveShopState(saveCtx, shopRepo, engine, w); saveErr != nil {
			slog.Error("final shop state save failed", "err", saveErr)
		}
	}

	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// gameLoop owns the world: one goroutine applies commands, clock ticks
// and autosaves sequentially, so world mutation needs no locking.
func gameLoop(ctx context.Context, tickEvery, saveEvery time.Duration, engine *shop.Engine, w *world.World, player *model.Character, commands <-chan string, autosave func()) error {
	tick := time.NewTicker(tickEvery)
	defer tick.Stop()

	var saveC <-chan time.Time
	if autosave != nil && saveEvery > 0 {
		save := time.NewTicker(saveEvery)
		defer save.Stop()
		saveC = save.C
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-tick.C:
			w.Clock().Advance(1)
		case <-saveC:
			autosave()
		case line, ok := <-commands:
			if !ok {
				return nil
			}
			dispatch(engine, w, player, line)
		}
	}
}

// dispatch parses one console line and routes it. Trade verbs go to
// every keeper in the player's room until one shop consumes the
// command, the way room special procedures fire.
func dispatch(engine *shop.Engine, w *world.World, player *model.Character, line string) {
	cmd, arg := splitCommand(line)
	if cmd == "" {
		return
	}

	switch cmd {
	case "time":
		fmt.Printf("It is %d o'clock.\n", w.Clock().Hour())
		return
	case "gold":
		fmt.Printf("You have %d gold coins.\n", player.Gold)
		return
	case "inventory", "i":
		if len(player.Carrying) == 0 {
			fmt.Println("You are not carrying anything.")
			return
		}
		for _, it := range player.Carrying {
			fmt.Println("  " + it.ShortDesc)
		}
		return
	case "show":
		sub, rest := splitCommand(arg)
		if sub == "shops" {
			engine.ShowShops(player, rest)
			return
		}
	}

	for _, ch := range w.CharsInRoom(player.Room) {
		if ch == player || !ch.NPC {
			continue
		}
		if engine.Handle(player, ch, cmd, arg) {
			return
		}
	}
	fmt.Println("Huh?!?")
}

func splitCommand(line string) (string, string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", ""
	}
	if i := strings.IndexByte(line, ' '); i >= 0 {
		return strings.ToLower(line[:i]), strings.TrimSpace(line[i+1:])
	}
	return strings.ToLower(line), ""
}

// readInput feeds stdin lines into the command channel. "quit" closes
// the channel and ends the session.
func readInput(ctx context.Context, commands chan<- string) error {
	defer close(commands)

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.EqualFold(line, "quit") {
			return nil
		}
		select {
		case commands <- line:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return scanner.Err()
}

// restoreShopState applies persisted keeper gold and bank accounts on
// top of the freshly booted world.
func restoreShopState(ctx context.Context, repo *db.ShopRepository, engine *shop.Engine, w *world.World) error {
	rows, err := repo.LoadAll(ctx)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	for _, s := range engine.Shops() {
		row, ok := rows[s.VNum]
		if !ok {
			continue
		}
		s.BankAccount = row.BankAccount
		if keeper := keeperFor(w, s); keeper != nil {
			keeper.Gold = row.KeeperGold
		}
	}
	slog.Info("restored shop state", "shops", len(rows))
	return nil
}

func saveShopState(ctx context.Context, repo *db.ShopRepository, engine *shop.Engine, w *world.World) error {
	var rows []db.ShopStateRow
	for _, s := range engine.Shops() {
		row := db.ShopStateRow{VNum: s.VNum, BankAccount: s.BankAccount}
		if keeper := keeperFor(w, s); keeper != nil {
			row.KeeperGold = keeper.Gold
		}
		rows = append(rows, row)
	}
	return repo.SaveAll(ctx, rows)
}

func keeperFor(w *world.World, s *shop.Shop) *model.Character {
	for _, ch := range w.Chars() {
		if ch.NPC && ch.Proto == s.Keeper {
			return ch
		}
	}
	return nil
}
