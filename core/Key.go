package core

type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyW
	KeyS
)

var keyName = map[Key]string{
	KeyOther: "Other",
	KeyUp:    "Up",
	KeyDown:  "Down",
	KeyW:     "W",
	KeyS:     "S",
}

func (k Key) String() string {
	return keyName[k]
}

// ParseKey maps a key name as reported by the terminal ("Up", "Down", "Rune[w]", ...) to a Key.
// Unknown names map to KeyOther.
func ParseKey(name string) Key {
	switch name {
	case "Up":
		return KeyUp
	case "Down":
		return KeyDown
	case "Rune[w]", "Rune[W]":
		return KeyW
	case "Rune[s]", "Rune[S]":
		return KeyS
	}
	return KeyOther
}
