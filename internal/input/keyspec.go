package input

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Keyspec is a key sequence specification as used in the config file, e.g.
// "<space>qw" meaning the SPACE key, then the Q key, then the W key.
type Keyspec string

type namedKey struct {
	name string
	key  Key
}

// specialKeys lists the identifiers usable in a special context ("<...>").
// Some control combinations share their tcell key with a named key (e.g.
// <c-i> and <tab>); the named key comes first and wins when describing keys.
var specialKeys = []namedKey{
	{"space", Key{Key: tcell.KeyRune, Ch: ' '}},
	{"cr", Key{Key: tcell.KeyEnter}},
	{"esc", Key{Key: tcell.KeyESC}},
	{"tab", Key{Key: tcell.KeyTab}},
	{"del", Key{Key: tcell.KeyDelete}},
	{"bs", Key{Key: tcell.KeyBackspace2}},
	{"left", Key{Key: tcell.KeyLeft}},
	{"right", Key{Key: tcell.KeyRight}},
	{"up", Key{Key: tcell.KeyUp}},
	{"down", Key{Key: tcell.KeyDown}},
	{"pgup", Key{Key: tcell.KeyPgUp}},
	{"pgdn", Key{Key: tcell.KeyPgDn}},
	{"home", Key{Key: tcell.KeyHome}},
}

func init() {
	for c := 'a'; c <= 'z'; c++ {
		specialKeys = append(specialKeys, namedKey{"c-" + string(c), Key{Key: tcell.KeyCtrlA + tcell.Key(c-'a')}})
	}
}

// ConfigKeyspecToKeys converts a full key sequence specification to the
// appropriate sequence of Keys (or an error, if invalid).
func ConfigKeyspecToKeys(spec Keyspec) ([]Key, error) {
	result := make([]Key, 0)

	runes := []rune(spec)
	for pos := 0; pos < len(runes); pos++ {
		switch runes[pos] {

		case '<':
			end := pos + 1
			for end < len(runes) && runes[end] != '>' {
				if runes[end] == '<' {
					return nil, fmt.Errorf("illegal second opening special context ('<') before previous is closed (pos %d)", end)
				}
				if !unicode.IsLetter(runes[end]) && runes[end] != '-' {
					return nil, fmt.Errorf("illegal character '%c' in special context (pos %d)", runes[end], end)
				}
				end++
			}
			if end == len(runes) {
				return nil, fmt.Errorf("special context opened at pos %d is never closed", pos)
			}
			key, err := KeyIdentifierToKey(string(runes[pos+1 : end]))
			if err != nil {
				return nil, fmt.Errorf("error mapping identifier '%s' to key: %w", string(runes[pos:end+1]), err)
			}
			result = append(result, key)
			pos = end

		case '>':
			return nil, fmt.Errorf("illegal closing of special context ('>') while none open (pos %d)", pos)

		default:
			result = append(result, Key{Key: tcell.KeyRune, Ch: runes[pos]})
		}
	}

	return result, nil
}

// KeyIdentifierToKey converts the given special identifier (e.g. "c-a" or
// "space") to the appropriate key (or an error, if invalid).
func KeyIdentifierToKey(identifier string) (Key, error) {
	identifier = strings.ToLower(identifier)
	for _, named := range specialKeys {
		if named.name == identifier {
			return named.key, nil
		}
	}
	return Key{}, fmt.Errorf("no mapping present for identifier '%s'", identifier)
}

// ToConfigIdentifierString converts the given key to its configuration
// identifier, e.g. for help display.
func ToConfigIdentifierString(k Key) string {
	for _, named := range specialKeys {
		if named.key == k {
			return "<" + named.name + ">"
		}
	}
	if k.Key == tcell.KeyRune {
		return string(k.Ch)
	}
	return k.ToDebugString()
}
