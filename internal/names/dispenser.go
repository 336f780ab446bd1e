// Package names hands out identifiers that are guaranteed unique for
// one compilation run.
package names

import "fmt"

// Dispenser allocates fresh names. Seeding it with every identifier
// already present in the source keeps synthesized names from shadowing
// user names.
type Dispenser struct {
	used map[string]bool
}

func NewDispenser(used map[string]bool) *Dispenser {
	d := &Dispenser{used: make(map[string]bool, len(used))}
	for name := range used {
		d.used[name] = true
	}
	return d
}

// New returns a name derived from seed that has not been handed out
// before and does not occur in the seeded identifier set.
func (d *Dispenser) New(seed string) string {
	name := seed
	for i := 1; d.used[name]; i++ {
		name = fmt.Sprintf("%s_%d", seed, i)
	}
	d.used[name] = true
	return name
}
