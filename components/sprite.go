package components

import "github.com/yohamta/donburi"

type SpriteData struct {
	Name      string
	Animation string  // animation set the sprite was built from
	Scale     float64 // render scale applied to all local geometry
}

var Sprite = donburi.NewComponentType[SpriteData]()
