package entity

// Built-in level symbols. These ids are fixed; anything beyond them goes
// through a Registry.
const (
	Empty   = '.'
	Wall    = '0'
	Player  = '1'
	Block   = '2'
	Diamond = '3'
	Egg     = '4'
	Enemy   = '5'
)

// Descriptor describes one entity kind. Symbol is the entity's identifier
// attribute and the key it is registered under.
type Descriptor struct {
	Symbol rune
	Name   string
}

// IsEmpty reports whether the descriptor is the empty-space kind, which a
// loader typically skips instead of instantiating.
func (d Descriptor) IsEmpty() bool {
	return d.Symbol == Empty
}

func builtins() []Descriptor {
	return []Descriptor{
		{Symbol: Empty, Name: "Empty"},
		{Symbol: Wall, Name: "Wall"},
		{Symbol: Player, Name: "Player"},
		{Symbol: Block, Name: "Block"},
		{Symbol: Diamond, Name: "Diamond"},
		{Symbol: Egg, Name: "Egg"},
		{Symbol: Enemy, Name: "Enemy"},
	}
}
