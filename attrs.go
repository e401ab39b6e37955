package gamebox

// extraAttrs is the open side-table behind SpriteBox.Set/Get and
// Camera.Set/Get. Teaching programs are encouraged to hang their own state
// off boxes ("box.Set(\"score\", 5)"), so a write of a brand-new name is
// fine and just logs a notice; a read of a name that was never set is a
// programming mistake and returns an UnknownAttributeError.
type extraAttrs struct {
	owner  string // type name used in errors, e.g. "SpriteBox"
	noun   string // short word used in notices, e.g. "box"
	values map[string]any
}

func (a *extraAttrs) set(name string, value any) {
	if a.values == nil {
		a.values = make(map[string]any)
	}
	if _, ok := a.values[name]; !ok {
		logger.Info().Msgf("added %q to %s", name, a.noun)
	}
	a.values[name] = value
}

func (a *extraAttrs) get(name string) (any, error) {
	if v, ok := a.values[name]; ok {
		return v, nil
	}
	return nil, &UnknownAttributeError{Owner: a.owner, Name: name}
}
