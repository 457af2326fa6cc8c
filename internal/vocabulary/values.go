package vocabulary

// ArgumentValues maps each bound argument to its raw, unvalidated value.
type ArgumentValues map[Argument]string

// ModifierValue pairs a modifier with the argument values bound to it.
type ModifierValue struct {
	Modifier  Modifier
	Arguments ArgumentValues
}

// ModifierValues is an ordered modifier→arguments mapping. Order is the order in which
// modifiers first appeared on the command line.
type ModifierValues []ModifierValue

// Get returns the arguments bound to modifier.
func (values ModifierValues) Get(modifier Modifier) (ArgumentValues, bool) {
	for _, entry := range values {
		if entry.Modifier == modifier {
			return entry.Arguments, true
		}
	}
	return nil, false
}

// Has reports whether modifier is present.
func (values ModifierValues) Has(modifier Modifier) bool {
	_, present := values.Get(modifier)
	return present
}

// Set stores arguments for modifier. An existing entry is replaced in place, keeping its position.
func (values ModifierValues) Set(modifier Modifier, arguments ArgumentValues) ModifierValues {
	for index := range values {
		if values[index].Modifier == modifier {
			values[index].Arguments = arguments
			return values
		}
	}
	return append(values, ModifierValue{Modifier: modifier, Arguments: arguments})
}

// Modifiers lists the present modifiers in order.
func (values ModifierValues) Modifiers() []Modifier {
	modifiers := make([]Modifier, 0, len(values))
	for _, entry := range values {
		modifiers = append(modifiers, entry.Modifier)
	}
	return modifiers
}

// Flatten concatenates every bound value across all modifiers, in modifier order and,
// within a modifier, in declared argument order.
func (values ModifierValues) Flatten() []string {
	var flattened []string
	for _, entry := range values {
		for _, argument := range entry.Modifier.Arguments() {
			if value, bound := entry.Arguments[argument]; bound {
				flattened = append(flattened, value)
			}
		}
	}
	return flattened
}

