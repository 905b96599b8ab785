package emit

import "maps"

// Patches maps a member's fully-qualified name to the lines that replace
// its declaration. One line replaces the declaration entirely; with two
// lines the second replaces the rendered name and signature.
type Patches map[string][]string

// DefaultPatches returns the built-in corrections for upstream members
// whose declarations conflict with inherited ones.
func DefaultPatches() Patches {
	return Patches{
		"Atk.Object.get_description": {
			"/* return type clashes with Atk.Action.get_description */",
			"get_description(): string | null",
		},
		"Atk.Object.get_name": {
			"/* return type clashes with Atk.Action.get_name */",
			"get_name(): string | null",
		},
		"Atk.Object.set_description": {
			"/* return type clashes with Atk.Action.set_description */",
			"set_description(description: string): boolean | null",
		},
		"Gtk.Container.child_notify": {"/* child_notify clashes with Gtk.Widget.child_notify */"},
		"Gtk.MenuItem.activate":      {"/* activate clashes with Gtk.Widget.activate */"},
		"Gtk.TextView.get_window":    {"/* get_window clashes with Gtk.Widget.get_window */"},
		"WebKit.WebView.get_settings": {"/* get_settings clashes with Gtk.Widget.get_settings */"},
	}
}

// Merge returns a new table holding p overlaid with other. Entries of
// other win; an empty entry in other removes the key.
func (p Patches) Merge(other Patches) Patches {
	out := make(Patches, len(p)+len(other))
	for k, v := range p {
		out[k] = append([]string(nil), v...)
	}
	for k, v := range other {
		if len(v) == 0 {
			delete(out, k)
			continue
		}
		out[k] = append([]string(nil), v...)
	}
	return out
}

// Clone returns a deep copy.
func (p Patches) Clone() Patches {
	out := maps.Clone(p)
	for k, v := range out {
		out[k] = append([]string(nil), v...)
	}
	return out
}
