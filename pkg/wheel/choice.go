package wheel

import (
	"fmt"
	"strconv"
	"strings"
)

// Choice is a selectable shading option
type Choice int

const (
	ChoiceNone Choice = iota
	ChoiceShaded
	ChoiceWireframe
	ChoiceShadedWireframe
)

// Choices lists every choice in index order
var Choices = [4]Choice{ChoiceNone, ChoiceShaded, ChoiceWireframe, ChoiceShadedWireframe}

var choiceLabels = [...]string{"None", "Shaded", "Wireframe", "Shaded Wireframe"}

// icon base names, looked up as <name>.png by hosts that draw icons
var choiceIcons = [...]string{"", "icon_shaded", "icon_wireframe", "icon_shaded_wireframe"}

// Valid reports whether c is one of the known choices
func (c Choice) Valid() bool {
	return c >= ChoiceNone && c <= ChoiceShadedWireframe
}

// Label is the text shown on the wheel button
func (c Choice) Label() string {
	if !c.Valid() {
		return "Choice(" + strconv.Itoa(int(c)) + ")"
	}
	return choiceLabels[c]
}

func (c Choice) String() string {
	return c.Label()
}

// Icon returns the icon asset name, empty for ChoiceNone
func (c Choice) Icon() string {
	if !c.Valid() {
		return ""
	}
	return choiceIcons[c]
}

// ChoiceLabels returns the labels in index order, for popups
func ChoiceLabels() []string {
	return append([]string(nil), choiceLabels[:]...)
}

// ParseChoice maps a label back to its choice, ignoring case
func ParseChoice(label string) (Choice, error) {
	for i, l := range choiceLabels {
		if strings.EqualFold(l, strings.TrimSpace(label)) {
			return Choice(i), nil
		}
	}
	return ChoiceNone, fmt.Errorf("unknown shading choice %q", label)
}

// ViewMode is the host viewport's render mode
type ViewMode int

const (
	// ViewHidden covers every host mode the wheel has no choice for
	ViewHidden ViewMode = iota
	ViewTextured
	ViewWireframe
	ViewTexturedWire
)

func (m ViewMode) String() string {
	switch m {
	case ViewTextured:
		return "Textured"
	case ViewWireframe:
		return "Wireframe"
	case ViewTexturedWire:
		return "TexturedWire"
	default:
		return "Hidden"
	}
}

// ViewMode returns the host mode and lighting flag a choice applies.
// ok is false for ChoiceNone, which carries no action.
func (c Choice) ViewMode() (mode ViewMode, lighting bool, ok bool) {
	switch c {
	case ChoiceWireframe:
		return ViewWireframe, false, true
	case ChoiceShaded:
		return ViewTextured, true, true
	case ChoiceShadedWireframe:
		return ViewTexturedWire, true, true
	default:
		return ViewHidden, false, false
	}
}

// ChoiceForViewMode returns the choice representing the host's live mode
func ChoiceForViewMode(mode ViewMode) Choice {
	switch mode {
	case ViewWireframe:
		return ChoiceWireframe
	case ViewTextured:
		return ChoiceShaded
	case ViewTexturedWire:
		return ChoiceShadedWireframe
	default:
		return ChoiceNone
	}
}
