package core

// OverlayContent is a titled panel drawn over the arena by frontends
type OverlayContent struct {
	Title  string
	Footer string
	Items  []OverlayItem
}

// OverlayItem is implemented by all overlay component types
type OverlayItem interface {
	overlayItem() // sealed marker
}

// OverlayCard displays a titled box with key-value entries
type OverlayCard struct {
	Key     string // hotkey shown before the title, empty for none
	Title   string
	Accent  bool
	Entries []CardEntry
}

func (OverlayCard) overlayItem() {}

// OverlayText is a free line of text
type OverlayText struct {
	Text string
}

func (OverlayText) overlayItem() {}

// CardEntry is a single key-value pair within a card
type CardEntry struct {
	Key   string
	Value string
}

// Cards extracts all OverlayCard items from content
func (c *OverlayContent) Cards() []OverlayCard {
	if c == nil {
		return nil
	}
	var cards []OverlayCard
	for _, item := range c.Items {
		if card, ok := item.(OverlayCard); ok {
			cards = append(cards, card)
		}
	}
	return cards
}

// Lines flattens the content into display lines, cards as a header plus indented entries
func (c *OverlayContent) Lines() []string {
	if c == nil {
		return nil
	}
	lines := []string{c.Title, ""}
	for _, item := range c.Items {
		switch it := item.(type) {
		case OverlayText:
			lines = append(lines, it.Text)
		case OverlayCard:
			head := it.Title
			if it.Key != "" {
				head = "[" + it.Key + "] " + head
			}
			lines = append(lines, head)
			for _, e := range it.Entries {
				if e.Key == "" {
					lines = append(lines, "    "+e.Value)
				} else {
					lines = append(lines, "    "+e.Key+": "+e.Value)
				}
			}
			lines = append(lines, "")
		}
	}
	if c.Footer != "" {
		lines = append(lines, c.Footer)
	}
	return lines
}
