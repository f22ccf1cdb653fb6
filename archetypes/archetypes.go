package archetypes

import (
	"github.com/automoto/nightlight/components"
	"github.com/automoto/nightlight/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
	)
	Ghost = newArchetype(
		tags.Ghost,
		components.Ghost,
		components.Object,
	)
	Spawner = newArchetype(
		tags.Spawner,
		components.Spawner,
		components.Object,
	)
	Banish = newArchetype(
		tags.Effect,
		components.Banish,
	)
	Space = newArchetype(
		components.Space,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Session = newArchetype(
		components.Session,
		components.Input,
		components.Audio,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components. It takes a plain
// world so the headless simulator can build the same entities as the client.
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	return w.Entry(w.Create(append(a.components, cs...)...))
}
