package persona

import "strings"

// KeySeparator joins a reviewer name and role into a PersonaKey.
const KeySeparator = "__"

// Key uniquely identifies one (name, role) combination in the pool.
type Key string

func (k Key) String() string { return string(k) }

// Persona is one reviewer identity from the fixed pool.
type Persona struct {
	Name string
	Role string
	Key  Key
}

// Names is the fixed list of reviewer display names shown on product pages.
var Names = []string{
	"Carolina G.",
	"Luis R.",
	"María P.",
	"Julián V.",
	"Esteban T.",
	"Lucía M.",
	"Andrés C.",
	"Sofía L.",
	"Valentina R.",
	"Diego S.",
	"Camila A.",
	"Fernando D.",
	"Paula N.",
	"Ricardo H.",
	"Gabriela E.",
	"Martín Q.",
}

// Roles is the fixed list of professional roles paired with names.
var Roles = []string{
	"Profesional",
	"Instalador",
	"Aficionado",
	"Técnico",
	"Carpintero",
	"Contratista",
	"Constructor",
	"Electricista",
	"Albañil",
	"Ebanista",
	"Soldador",
	"Herrero",
	"Plomero",
	"Mecánico",
	"Tornero",
}

// NewKey builds the pool key for a (name, role) pair.
func NewKey(name, role string) Key {
	return Key(name + KeySeparator + role)
}

// Split resolves a key back into its (name, role) parts. Either part may come
// back empty when the key is malformed; callers decide the fallback.
func (k Key) Split() (name, role string) {
	parts := strings.SplitN(string(k), KeySeparator, 2)
	name = parts[0]
	if len(parts) > 1 {
		role = parts[1]
	}
	return name, role
}

// Pool is the ordered, immutable cross-product of Names x Roles. Order is
// name-major and defines the traversal sequence used during allocation, so it
// must never change once products have persisted selections against it.
type Pool struct {
	entries []Persona
	byKey   map[Key]int
}

// NewPool builds the full persona pool.
func NewPool() *Pool {
	entries := make([]Persona, 0, len(Names)*len(Roles))
	byKey := make(map[Key]int, len(Names)*len(Roles))
	for _, n := range Names {
		for _, r := range Roles {
			k := NewKey(n, r)
			byKey[k] = len(entries)
			entries = append(entries, Persona{Name: n, Role: r, Key: k})
		}
	}
	return &Pool{entries: entries, byKey: byKey}
}

// Size returns the number of personas in the pool.
func (p *Pool) Size() int { return len(p.entries) }

// At returns the persona at position i in traversal order.
func (p *Pool) At(i int) Persona { return p.entries[i] }

// Lookup resolves a key to its pool entry.
func (p *Pool) Lookup(k Key) (Persona, bool) {
	i, ok := p.byKey[k]
	if !ok {
		return Persona{}, false
	}
	return p.entries[i], true
}

// Resolve turns a persisted key into a displayable (name, role) pair. Keys
// written by older builds may be malformed; missing parts fall back to a
// seed-indexed entry so the caller still renders something stable.
func (p *Pool) Resolve(k Key, seed Seed) Persona {
	if entry, ok := p.Lookup(k); ok {
		return entry
	}
	name, role := k.Split()
	if name == "" {
		name = Names[int(seed)%len(Names)]
	}
	if role == "" {
		role = Roles[int(seed)%len(Roles)]
	}
	return Persona{Name: name, Role: role, Key: k}
}
