package gamebox

import (
	"fmt"
	"strings"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
)

// Key identifies a keyboard key. It is Ebitengine's key type, so every
// ebiten.Key constant works directly; the aliases below cover the keys
// teaching games reach for most.
type Key = ebiten.Key

const (
	KeyUp        = ebiten.KeyArrowUp
	KeyDown      = ebiten.KeyArrowDown
	KeyLeft      = ebiten.KeyArrowLeft
	KeyRight     = ebiten.KeyArrowRight
	KeySpace     = ebiten.KeySpace
	KeyEnter     = ebiten.KeyEnter
	KeyEscape    = ebiten.KeyEscape
	KeyShift     = ebiten.KeyShiftLeft
	KeyTab       = ebiten.KeyTab
	KeyBackspace = ebiten.KeyBackspace
)

// Keys is the set of keys held down during one tick of the render loop.
type Keys map[Key]bool

// Pressed reports whether the given key is held down.
func (k Keys) Pressed(key Key) bool { return k[key] }

// AnyPressed reports whether any of the given keys is held down.
func (k Keys) AnyPressed(keys ...Key) bool {
	for _, key := range keys {
		if k[key] {
			return true
		}
	}
	return false
}

// Empty reports whether no key is held down.
func (k Keys) Empty() bool { return len(k) == 0 }

// IsPressed reports whether the key is held down, per the Camera's key set
// as tracked by the render loop. Always false before a Camera exists.
func IsPressed(key Key) bool {
	return current != nil && current.keys.Pressed(key)
}

// AnyPressed reports whether any of the given keys is held down.
func AnyPressed(keys ...Key) bool {
	return current != nil && current.keys.AnyPressed(keys...)
}

var keyByName = sync.OnceValue(func() map[string]Key {
	m := make(map[string]Key, int(ebiten.KeyMax)+1)
	for k := Key(0); k <= ebiten.KeyMax; k++ {
		if s := k.String(); s != "" {
			m[strings.ToLower(s)] = k
		}
	}
	// Friendly spellings beginners try first.
	m["up"] = KeyUp
	m["down"] = KeyDown
	m["left"] = KeyLeft
	m["right"] = KeyRight
	m["esc"] = KeyEscape
	m["return"] = KeyEnter
	m[" "] = KeySpace
	return m
})

// KeyNamed resolves a key by name, case-insensitively: "a", "up",
// "arrowleft", "space", "digit7". An unknown name yields an
// InvalidArgumentError whose message suggests the most similar known name.
func KeyNamed(name string) (Key, error) {
	byName := keyByName()
	lower := strings.ToLower(name)
	if k, ok := byName[lower]; ok {
		return k, nil
	}
	names := make([]string, 0, len(byName))
	for n := range byName {
		names = append(names, n)
	}
	return 0, &InvalidArgumentError{
		Reason: fmt.Sprintf("%q is not a valid key name. Did you mean %q?",
			name, closestMatch(lower, names)),
	}
}
