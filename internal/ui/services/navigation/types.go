package navigation

// State holds the card cursor and the visible window of cards
type State struct {
	Cursor         int
	ViewportOffset int
	ViewportHeight int // in cards
}

// Direction represents movement directions
type Direction string

const (
	DirectionUp       Direction = "up"
	DirectionDown     Direction = "down"
	DirectionPageUp   Direction = "pageup"
	DirectionPageDown Direction = "pagedown"
	DirectionHome     Direction = "home"
	DirectionEnd      Direction = "end"
)
