// Command chess runs a two-player game in the terminal.
package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"strings"

	"github.com/hailam/gridchess/internal/console"
	"github.com/hailam/gridchess/internal/storage"
)

func main() {
	// Flags (env fallbacks). Explicit values override stored preferences.
	dataDir := flag.String("data-dir", getenv("CHESS_DATA_DIR", ""), "directory for preferences and statistics (default: platform data dir)")
	unicode := flag.Bool("unicode", getenb("CHESS_UNICODE", false), "draw pieces with chess glyphs")
	flip := flag.Bool("flip", getenb("CHESS_FLIP", false), "draw the board from Black's side")
	hints := flag.Bool("hints", true, "mark legal destinations after selecting a piece")
	noStore := flag.Bool("no-store", getenb("CHESS_NO_STORE", false), "do not read or write preferences and statistics")
	flag.Parse()

	set := explicit(map[string]string{
		"unicode": "CHESS_UNICODE",
		"flip":    "CHESS_FLIP",
	})

	prefs := storage.DefaultPreferences()
	welcome := true

	var store *storage.Storage
	if !*noStore {
		var err error
		store, err = openStore(*dataDir)
		if err != nil {
			log.Printf("Warning: storage unavailable: %v (continuing without persistence)", err)
		} else {
			defer store.Close()
			if loaded, err := store.LoadPreferences(); err != nil {
				log.Printf("Warning: %v", err)
			} else {
				prefs = loaded
			}
			if first, err := store.IsFirstLaunch(); err == nil {
				welcome = first
			}
		}
	}

	if set["unicode"] {
		prefs.Unicode = *unicode
	}
	if set["flip"] {
		prefs.FlipBoard = *flip
	}
	if set["hints"] {
		prefs.ShowHints = *hints
	}

	opts := []console.Option{
		console.WithRenderer(console.Renderer{Unicode: prefs.Unicode, Flip: prefs.FlipBoard}),
		console.WithHints(prefs.ShowHints),
		console.WithWelcome(welcome),
	}
	if store != nil {
		opts = append(opts, console.WithRecorder(store))
	}

	c := console.New(os.Stdin, os.Stdout, opts...)
	err := c.Run()
	if errors.Is(err, console.ErrInputClosed) {
		log.Printf("Input closed, game abandoned")
	} else if err != nil {
		log.Printf("Game error: %v", err)
	}

	if store == nil {
		return
	}
	if err := store.SavePreferences(prefs); err != nil {
		log.Printf("Warning: %v", err)
	}
	if welcome {
		if err := store.MarkFirstLaunchComplete(); err != nil {
			log.Printf("Warning: %v", err)
		}
	}
	if stats, err := store.LoadStats(); err == nil && stats.GamesPlayed > 0 {
		log.Printf("Games played: %d (White %d, Black %d, drawn %d), White score %.1f%%",
			stats.GamesPlayed, stats.WhiteWins, stats.BlackWins, stats.Draws, stats.WhiteScore())
	}
}

func openStore(dir string) (*storage.Storage, error) {
	if dir == "" {
		return storage.NewStorage()
	}
	return storage.Open(dir)
}

// explicit reports which flags were given on the command line or through
// their environment variable.
func explicit(envs map[string]string) map[string]bool {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	for name, key := range envs {
		if os.Getenv(key) != "" {
			set[name] = true
		}
	}
	return set
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenb(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "true", "t", "yes", "y", "on":
			return true
		case "0", "false", "f", "no", "n", "off":
			return false
		}
	}
	return def
}
