package gameplay

import (
	"github.com/automoto/nightlight/components"
	"github.com/automoto/nightlight/player"
	"github.com/automoto/nightlight/shared/spatial"
	"github.com/automoto/nightlight/tags"
	"github.com/yohamta/donburi"
)

// UpdateContacts reports every ghost overlapping the player to the state
// machine. The machine decides whether a contact counts.
func UpdateContacts(w donburi.World) {
	entry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	pd := components.Player.Get(entry)
	space := spaceOf(w)
	if pd.Machine == nil || space == nil {
		return
	}

	for _, obj := range space.Touching(components.Object.Get(entry).Object, spatial.TagGhost) {
		ghost, ok := obj.Data.(*donburi.Entry)
		if !ok || !ghost.Valid() || components.Ghost.Get(ghost).Attacking {
			continue
		}
		pd.Machine.ReportContact(player.EnemyHandle(ghost.Entity()))
	}
}
