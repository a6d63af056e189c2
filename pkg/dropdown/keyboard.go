package dropdown

// Key values as reported by KeyboardEvent.key.
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyHome      = "Home"
	KeyEnd       = "End"
	KeyEnter     = "Enter"
	KeySpace     = " "
	KeyEscape    = "Escape"
	KeyTab       = "Tab"
)

// HandleKey applies a key press and reports whether the widget consumed it.
//
//   - ArrowDown / ArrowUp open a closed list, otherwise move the highlight
//   - Home / End jump to the first / last enabled option while open
//   - Enter / Space choose the highlighted option while open, otherwise open
//   - Escape / Tab close an open list
//
// A disabled widget consumes nothing.
func (s *Select) HandleKey(key string) bool {
	if s.cfg.disabled {
		return false
	}

	open := s.state == Open

	switch key {
	case KeyArrowDown:
		if open {
			s.Next()
		} else {
			s.Open()
		}
	case KeyArrowUp:
		if open {
			s.Prev()
		} else {
			s.Open()
		}
	case KeyHome:
		if !open {
			return false
		}
		s.First()
	case KeyEnd:
		if !open {
			return false
		}
		s.Last()
	case KeyEnter, KeySpace:
		if open {
			s.ChooseHighlighted()
		} else {
			s.Open()
		}
	case KeyEscape, KeyTab:
		if !open {
			return false
		}
		s.Close()
	default:
		return false
	}

	return true
}
