package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// Space is the scene's resolv broad-phase grid. Sprite objects live in it so
// their cells follow every move.
var Space = donburi.NewComponentType[resolv.Space]()
