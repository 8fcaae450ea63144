package extract

// Visibility selects which definitions a filter keeps.
type Visibility uint8

const (
	// Public keeps names without a leading underscore.
	Public Visibility = iota
	// Private keeps only names with a leading underscore.
	Private
	// All keeps everything.
	All
)

func (v Visibility) String() string {
	switch v {
	case Public:
		return "public"
	case Private:
		return "private"
	case All:
		return "all"
	default:
		return "unknown"
	}
}

// Keep reports whether a definition with the given name passes the mode.
func (v Visibility) Keep(name string) bool {
	private := len(name) > 0 && name[0] == '_'
	switch v {
	case Public:
		return !private
	case Private:
		return private
	default:
		return true
	}
}

// Filter returns the definitions passing the visibility mode, in the
// original order. A nameless definition fails the whole call: filtering
// cannot classify what it cannot name.
func Filter(defs []Definition, mode Visibility) ([]Definition, error) {
	out := make([]Definition, 0, len(defs))
	for _, d := range defs {
		name, err := d.Name()
		if err != nil {
			return nil, err
		}
		if mode.Keep(name) {
			out = append(out, d)
		}
	}
	return out, nil
}
