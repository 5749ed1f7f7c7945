package input

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Key is a single key press as the input tree processes it.
// Modifiers are not tracked; control combinations are distinct tcell keys.
type Key struct {
	Key tcell.Key
	Ch  rune
}

// KeyFromTcellEvent formats a tcell.EventKey to a Key as this package expects
// it. Any Key for a tcell.EventKey should be converted by this function.
func KeyFromTcellEvent(e *tcell.EventKey) Key {
	if e.Key() == tcell.KeyRune {
		return Key{Key: tcell.KeyRune, Ch: e.Rune()}
	}
	return Key{Key: e.Key()}
}

// ToDebugString returns a representation of the key for logging.
func (k Key) ToDebugString() string {
	return fmt.Sprintf("(%s (%d),'%s'(%d))", tcell.KeyNames[k.Key], int(k.Key), string(k.Ch), int(k.Ch))
}
