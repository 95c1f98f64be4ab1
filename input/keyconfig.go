package input

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"unicode"

	"github.com/BurntSushi/toml"
	"github.com/gdamore/tcell/v2"
)

// ErrInvalidKeymap marks keymap data that parses but cannot be applied, or fails to parse
var ErrInvalidKeymap = errors.New("invalid keymap")

// Rune aliases for keys that are awkward as TOML strings
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// specialKeys resolves lowercased tcell key names (e.g. "esc", "ctrl-c", "up")
var specialKeys = func() map[string]tcell.Key {
	m := make(map[string]tcell.Key, len(tcell.KeyNames))
	for k, name := range tcell.KeyNames {
		m[strings.ToLower(name)] = k
	}
	return m
}()

// Keymap resolves key events to actions
type Keymap struct {
	runes   map[rune]Action
	special map[tcell.Key]Action
}

// keymapFile is the on-disk keymap layout
//
//	[keys]
//	up = ["w", "Up"]
//	mute = ["none"]
type keymapFile struct {
	Keys map[string][]string `toml:"keys"`
}

// DefaultKeymap returns the built-in bindings
func DefaultKeymap() *Keymap {
	km, err := buildKeymap(defaultBindings)
	if err != nil {
		panic(fmt.Sprintf("default keymap: %v", err))
	}
	return km
}

// LoadKeymapFile reads a TOML keymap and merges it over the defaults
func LoadKeymapFile(path string) (*Keymap, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("keymap read: %w", err)
	}
	return LoadKeymap(data)
}

// LoadKeymap parses TOML keymap data and merges it over the defaults
// Actions present in the data replace their default keys; ["none"] unbinds
// Returns error on unknown action names, invalid key names, or parse failure
func LoadKeymap(data []byte) (*Keymap, error) {
	var f keymapFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return nil, fmt.Errorf("%w: parse: %w", ErrInvalidKeymap, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown entry %q", ErrInvalidKeymap, undecoded[0].String())
	}

	merged := make(map[string][]string, len(defaultBindings))
	for name, keys := range defaultBindings {
		merged[name] = keys
	}
	for name, keys := range f.Keys {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := actionRegistry[name]; !ok || name == "none" {
			return nil, fmt.Errorf("%w: [keys] unknown action: %q", ErrInvalidKeymap, name)
		}
		if len(keys) == 1 && strings.EqualFold(keys[0], "none") {
			delete(merged, name)
			continue
		}
		merged[name] = keys
	}

	return buildKeymap(merged)
}

func buildKeymap(bindings map[string][]string) (*Keymap, error) {
	km := &Keymap{
		runes:   make(map[rune]Action),
		special: make(map[tcell.Key]Action),
	}

	for name, keys := range bindings {
		action := actionRegistry[name]
		for _, keyStr := range keys {
			if r, ok := resolveRune(keyStr); ok {
				r = unicode.ToLower(r)
				if prev, dup := km.runes[r]; dup && prev != action {
					return nil, fmt.Errorf("%w: [keys] %s: key %q already bound", ErrInvalidKeymap, name, keyStr)
				}
				km.runes[r] = action
				continue
			}

			k, ok := specialKeys[strings.ToLower(keyStr)]
			if !ok {
				return nil, fmt.Errorf("%w: [keys] %s: unknown key name: %q", ErrInvalidKeymap, name, keyStr)
			}
			if prev, dup := km.special[k]; dup && prev != action {
				return nil, fmt.Errorf("%w: [keys] %s: key %q already bound", ErrInvalidKeymap, name, keyStr)
			}
			km.special[k] = action
		}
	}

	return km, nil
}

// resolveRune converts a key string to a rune
// Accepts single characters and named aliases
func resolveRune(s string) (rune, bool) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, true
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], true
	}
	return 0, false
}

// Resolve returns the action bound to a key event, or ActionNone
func (km *Keymap) Resolve(ev *tcell.EventKey) Action {
	if ev.Key() == tcell.KeyRune {
		return km.runes[unicode.ToLower(ev.Rune())]
	}
	return km.special[ev.Key()]
}
