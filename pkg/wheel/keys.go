package wheel

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Key is a keyboard key code. Values follow GLFW numbering, which raylib
// shares, so hosts can pass them straight through.
type Key int32

const (
	KeySpace Key = 32
	Key0     Key = 48
	Key9     Key = 57
	KeyA     Key = 65
	KeyZ     Key = 90
	KeyGrave Key = 96
	KeyTab   Key = 258
	KeyF1    Key = 290
	KeyF12   Key = 301
)

// DefaultActivationKey is the key that arms the wheel out of the box
const DefaultActivationKey = KeyZ

var namedKeys = map[Key]string{
	KeySpace: "Space",
	KeyGrave: "Grave",
	KeyTab:   "Tab",
}

func (k Key) String() string {
	switch {
	case k >= KeyA && k <= KeyZ, k >= Key0 && k <= Key9:
		return string(rune(k))
	case k >= KeyF1 && k <= KeyF12:
		return "F" + strconv.Itoa(int(k-KeyF1)+1)
	}
	if name, ok := namedKeys[k]; ok {
		return name
	}
	return "Key(" + strconv.Itoa(int(k)) + ")"
}

// Known reports whether the key has a name the preferences UI can show
func (k Key) Known() bool {
	return !strings.HasPrefix(k.String(), "Key(")
}

// KeyNames lists every selectable key name: letters, digits, function keys, then named keys
func KeyNames() []string {
	names := make([]string, 0, 26+10+12+len(namedKeys))
	for k := KeyA; k <= KeyZ; k++ {
		names = append(names, k.String())
	}
	for k := Key0; k <= Key9; k++ {
		names = append(names, k.String())
	}
	for k := KeyF1; k <= KeyF12; k++ {
		names = append(names, k.String())
	}
	named := make([]string, 0, len(namedKeys))
	for _, name := range namedKeys {
		named = append(named, name)
	}
	sort.Strings(named)
	return append(names, named...)
}

// ParseKey resolves a key name (case-insensitive) or a raw numeric code
func ParseKey(name string) (Key, error) {
	name = strings.TrimSpace(name)
	for _, candidate := range KeyNames() {
		if strings.EqualFold(candidate, name) {
			return keyByName(candidate), nil
		}
	}
	if code, err := strconv.Atoi(name); err == nil && code > 0 {
		return Key(code), nil
	}
	return 0, fmt.Errorf("unknown key %q", name)
}

func keyByName(name string) Key {
	for k, n := range namedKeys {
		if n == name {
			return k
		}
	}
	if len(name) == 1 {
		return Key(name[0])
	}
	n, _ := strconv.Atoi(strings.TrimPrefix(name, "F"))
	return KeyF1 + Key(n-1)
}
