package nickname

import (
	"fmt"
	"slices"
	"unicode"
)

// Table maps a lowercase first letter to its ordered nickname candidates.
// A Table is immutable once built and safe for concurrent readers.
type Table struct {
	entries map[rune][]string
}

// NewTable builds a Table from entries. Keys are lowercased; every key must map
// to at least one candidate. The candidate order is preserved.
func NewTable(entries map[rune][]string) (*Table, error) {
	t := &Table{entries: make(map[rune][]string, len(entries))}
	for letter, candidates := range entries {
		if len(candidates) == 0 {
			return nil, fmt.Errorf("nickname table: no candidates for %q", letter)
		}
		key := unicode.ToLower(letter)
		if _, dup := t.entries[key]; dup {
			return nil, fmt.Errorf("nickname table: duplicate entry for %q", key)
		}
		t.entries[key] = slices.Clone(candidates)
	}
	return t, nil
}

// MustTable is like NewTable but panics on invalid entries. It is meant for
// tables baked into the binary.
func MustTable(entries map[rune][]string) *Table {
	t, err := NewTable(entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Lookup returns a copy of the candidates for letter. A missing letter is
// reported with ok == false and means "no nickname", not an error.
func (t *Table) Lookup(letter rune) (candidates []string, ok bool) {
	c, ok := t.entries[letter]
	if !ok {
		return nil, false
	}
	return slices.Clone(c), true
}

// Len returns the number of letters in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Default is the built-in table used by the console and the chat bots.
var Default = MustTable(map[rune][]string{
	'a': {"Admiral Noodle", "Ace of Spades", "Aardvark Supreme", "Astro Al"},
	'b': {"Bubbles", "Big Cheese", "Bagel Baron", "Boom-Boom", "Buttercup"},
	'c': {"Captain Crunch", "Cosmic Carl", "Cupcake", "Chief Chuckles"},
	'd': {"Dragonfly", "Duke of Doughnuts", "Dizzy D", "Dapper Dan"},
	'e': {"Eggroll", "Electric Eel", "Emperor Echo"},
	'f': {"Fuzzy Wuzzy", "Firecracker", "Flapjack", "Funky Fresh"},
	'g': {"Gumdrop", "Grand Wizard", "Gizmo", "Goose"},
	'h': {"Hot Sauce", "Hammerhead", "Honeybun", "High Roller"},
	'i': {"Iceberg", "Iron Ivy", "Imp"},
	'j': {"Jellybean", "Jumping Jack", "Jazz Hands", "Jetpack"},
	'k': {"Kingpin", "Kit-Kat", "Kazoo", "Kilowatt"},
	'l': {"Lollipop", "Lone Wolf", "Lucky Legs", "Lightning"},
	'm': {"Meatball", "Moonpie", "Maverick", "Mighty Mouse", "Mojo"},
	'n': {"Nacho", "Night Owl", "Noodles", "Nimbus"},
	'o': {"Octopus", "Old Sport", "Onion Ring"},
	'p': {"Pickles", "Pop Rocks", "Professor Plum", "Pumpkin", "Pixel"},
	'q': {"Quasar", "Queen Bee", "Quackers"},
	'r': {"Rocket", "Rubber Duck", "Razzle Dazzle", "Rascal"},
	's': {"Sprinkles", "Slim Jim", "Space Cadet", "Snickerdoodle", "Sparky"},
	't': {"Timmy", "Tiny-T", "The Rock"},
	'u': {"Unicorn", "Ultraviolet", "Uncle Buck"},
	'v': {"Velvet Thunder", "Viking", "Vroom-Vroom"},
	'w': {"Waffles", "Wildcard", "Wizard of Woz", "Wiggles"},
	'x': {"X-Factor", "Xylophone"},
	'y': {"Yeti", "Yo-Yo", "Yankee Doodle"},
	'z': {"Zigzag", "Zippy", "Zeppelin"},
})
