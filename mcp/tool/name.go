package tool

import "strings"

// Prefix qualifies every tool this server exposes.
const Prefix = "viking_"

// Name is a canonical tool identifier, e.g. "viking_deep_search".
type Name string

// Op returns the operation part without the prefix.
func (t Name) Op() string {
	return strings.TrimPrefix(string(t), Prefix)
}

func (t Name) String() string {
	return string(t)
}

// Canonical normalizes user-supplied spellings to the registered tool name.
// Accepted inputs are the canonical form, the bare operation ("search") and
// the separator variants "viking-search", "viking/search", "viking.search".
func Canonical(in string) Name {
	name := strings.TrimSpace(in)
	for _, sep := range []string{"viking-", "viking/", "viking."} {
		if strings.HasPrefix(name, sep) {
			name = Prefix + name[len(sep):]
			break
		}
	}
	if !strings.HasPrefix(name, Prefix) {
		name = Prefix + name
	}
	return Name(name)
}
