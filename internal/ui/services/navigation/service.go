package navigation

// Service moves the cursor over the result cards
type Service struct {
	state   *State
	countFn func() int // Function returning the number of results
}

// NewService creates a new navigation service
func NewService() *Service {
	return &Service{
		state: &State{
			ViewportHeight: 3, // Default, updated on resize
		},
	}
}

// SetCountFunction sets the function returning the number of results
func (s *Service) SetCountFunction(fn func() int) {
	s.countFn = fn
}

// Cursor returns the current cursor position
func (s *Service) Cursor() int {
	s.clamp()
	return s.state.Cursor
}

// ViewportOffset returns the index of the first visible card
func (s *Service) ViewportOffset() int {
	s.clamp()
	return s.state.ViewportOffset
}

// ViewportHeight returns how many cards fit on screen
func (s *Service) ViewportHeight() int {
	return s.state.ViewportHeight
}

// SetViewportHeight sets how many cards fit on screen
func (s *Service) SetViewportHeight(cards int) {
	if cards < 1 {
		cards = 1
	}
	s.state.ViewportHeight = cards
	s.ensureVisible()
}

// Reset moves back to the first card, used when new results arrive
func (s *Service) Reset() {
	s.state.Cursor = 0
	s.state.ViewportOffset = 0
}

// Navigate handles navigation in a direction
func (s *Service) Navigate(direction Direction) {
	switch direction {
	case DirectionUp:
		s.MoveToIndex(s.state.Cursor - 1)
	case DirectionDown:
		s.MoveToIndex(s.state.Cursor + 1)
	case DirectionPageUp:
		s.MoveToIndex(s.state.Cursor - s.state.ViewportHeight)
	case DirectionPageDown:
		s.MoveToIndex(s.state.Cursor + s.state.ViewportHeight)
	case DirectionHome:
		s.MoveToIndex(0)
	case DirectionEnd:
		s.MoveToIndex(s.count() - 1)
	}
}

// MoveToIndex moves cursor to specific index, clamped to the results
func (s *Service) MoveToIndex(index int) {
	s.state.Cursor = index
	s.clamp()
	s.ensureVisible()
}

func (s *Service) count() int {
	if s.countFn == nil {
		return 0
	}
	return s.countFn()
}

func (s *Service) clamp() {
	maxIndex := s.count() - 1
	if s.state.Cursor > maxIndex {
		s.state.Cursor = maxIndex
	}
	if s.state.Cursor < 0 {
		s.state.Cursor = 0
	}
	if s.state.ViewportOffset > s.state.Cursor {
		s.state.ViewportOffset = s.state.Cursor
	}
}

func (s *Service) ensureVisible() {
	if s.state.Cursor < s.state.ViewportOffset {
		s.state.ViewportOffset = s.state.Cursor
	} else if s.state.Cursor >= s.state.ViewportOffset+s.state.ViewportHeight {
		s.state.ViewportOffset = s.state.Cursor - s.state.ViewportHeight + 1
	}
}
