// Package main is a terminal playground for the canvas input matcher. It
// registers a demo shortcut profile and visualises the lifecycle of the
// actions the matcher drives while you type, click, drag, and scroll.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/canvasinput/internal/action/luaaction"
	"github.com/dshills/canvasinput/internal/config"
	"github.com/dshills/canvasinput/internal/feedback"
	"github.com/dshills/canvasinput/internal/input/matcher"
	"github.com/dshills/canvasinput/internal/input/profile"
	"github.com/dshills/canvasinput/internal/input/shortcut"
	"github.com/dshills/canvasinput/internal/term"
)

// defaultProfile is the demo binding set used when no profile file is
// configured.
const defaultProfile = `{
	"name": "demo",
	"shortcuts": [
		{"type": "stroke", "action": "paint", "buttons": "Left"},
		{"type": "stroke", "action": "pan", "keys": "Space", "buttons": "Left", "priority": 10, "group": "view"},
		{"type": "stroke", "action": "pick", "keys": "Ctrl", "buttons": "Left"},
		{"type": "wheel", "action": "zoom", "wheel": "up", "index": 1, "group": "view"},
		{"type": "wheel", "action": "zoom", "wheel": "down", "index": 2, "group": "view"},
		{"type": "key", "action": "undo", "keys": "Ctrl", "trigger": "Z"},
		{"type": "key", "action": "scripted", "keys": "Ctrl", "trigger": "L"},
		{"type": "touch", "action": "pan", "index": 1, "gesture": "drag", "min_points": 2, "max_points": 3, "group": "view"}
	]
}`

// scriptedAction is a tiny Lua action wired into the demo profile.
const scriptedAction = `
count = 0

function begin(index, event)
	count = count + 1
end
`

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "path to a settings TOML file")
	profilePath := flag.String("profile", "", "path to a shortcut profile JSON file")
	flag.Parse()

	settings := config.Default()
	if *configPath != "" {
		var err error
		settings, err = config.NewLoader().Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: failed to load config: %v\n", err)
			return 1
		}
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel(settings.LogLevel),
	}))
	slog.SetDefault(logger)

	cfg := settings.MatcherConfig()
	cfg.Logger = logger
	m := matcher.NewWithConfig(cfg)

	board := newStatusBoard()
	scripted, err := luaaction.New(scriptedAction, luaaction.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load scripted action: %v\n", err)
		return 1
	}
	defer scripted.Close()

	actions := map[string]shortcut.Action{
		"paint":    board.action("paint"),
		"pan":      board.action("pan"),
		"pick":     board.action("pick"),
		"zoom":     board.action("zoom"),
		"undo":     board.action("undo"),
		"scripted": scripted,
	}

	if err := loadProfile(m, settings.ProfilePath, *profilePath, actions); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load profile: %v\n", err)
		return 1
	}

	if err := runUI(m, board); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	slog.Info("canvasinput demo stopped")
	return 0
}

// loadProfile applies the flag-selected, configured, or built-in profile.
func loadProfile(m *matcher.Matcher, configured, flagged string, actions map[string]shortcut.Action) error {
	data := []byte(defaultProfile)

	path := flagged
	if path == "" {
		path = configured
	}
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading profile %s: %w", path, err)
		}
	}

	p, err := profile.Parse(data)
	if err != nil {
		return err
	}
	slog.Info("shortcut profile loaded", "name", p.Name, "shortcuts", len(p.Shortcuts))

	return p.Apply(m, profile.ResolverFunc(func(name string) (shortcut.Action, bool) {
		a, ok := actions[name]
		return a, ok
	}))
}

// runUI owns the terminal screen and the event loop. Ctrl+Q quits.
func runUI(m *matcher.Matcher, board *statusBoard) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()

	screen.EnableMouse()
	screen.EnableFocus()

	driver := term.NewDriver(m)
	m.EnterEvent()

	palette := feedback.DefaultPalette()

	for {
		render(screen, m, board, palette)

		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		if kev, ok := ev.(*tcell.EventKey); ok && kev.Key() == tcell.KeyCtrlQ {
			return nil
		}
		if _, ok := ev.(*tcell.EventResize); ok {
			screen.Sync()
			continue
		}

		driver.HandleEvent(ev)
	}
}

func render(screen tcell.Screen, m *matcher.Matcher, board *statusBoard, palette feedback.Palette) {
	screen.Clear()

	drawText(screen, 0, 0, tcell.StyleDefault.Bold(true),
		"canvasinput demo — Space+drag pans, Ctrl+drag picks, drag paints, Ctrl+Z undo, wheel zooms, Ctrl+Q quits")

	held := fmt.Sprintf("held keys: %v", m.DebugPressedKeys())
	drawText(screen, 0, 2, tcell.StyleDefault, held)

	row := 4
	for _, line := range board.lines() {
		tint := palette.Tint(line.state)
		r, g, b := tint.RGB255()
		style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
		drawText(screen, 0, row, style, fmt.Sprintf("%-8s %s", line.name, line.state))
		row++
	}

	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range text {
		screen.SetContent(x+i, y, r, nil, style)
	}
}

func logLevel(name string) slog.Level {
	switch name {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
