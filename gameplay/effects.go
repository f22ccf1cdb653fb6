package gameplay

import (
	"github.com/automoto/nightlight/components"
	"github.com/automoto/nightlight/tags"
	"github.com/yohamta/donburi"
)

// UpdateEffects ages banish puffs and removes the finished ones.
func UpdateEffects(w donburi.World, dt float64) {
	var done []donburi.Entity
	tags.Effect.Each(w, func(entry *donburi.Entry) {
		b := components.Banish.Get(entry)
		b.Elapsed += dt
		if b.Elapsed >= b.Duration {
			done = append(done, entry.Entity())
		}
	})
	for _, e := range done {
		w.Remove(e)
	}
}
