package settings_test

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// findButton walks a container tree for a button with the given text
func findButton(t *testing.T, root fyne.CanvasObject, text string) *widget.Button {
	t.Helper()
	var walk func(o fyne.CanvasObject) *widget.Button
	walk = func(o fyne.CanvasObject) *widget.Button {
		switch v := o.(type) {
		case *widget.Button:
			if v.Text == text {
				return v
			}
		case *fyne.Container:
			for _, child := range v.Objects {
				if b := walk(child); b != nil {
					return b
				}
			}
		case *container.Scroll:
			return walk(v.Content)
		}
		return nil
	}
	b := walk(root)
	if b == nil {
		t.Fatalf("button %q not found", text)
	}
	return b
}
