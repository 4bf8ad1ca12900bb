package grb

// Descriptor carries the per-call modifier flags of an operation. A nil
// Descriptor means: structural mask, no complement, no replace.
type Descriptor struct {
	// Complement logically inverts the mask: positions covered by the
	// mask are masked out, all others masked in.
	Complement bool

	// ValueMask switches the mask from structural semantics (presence
	// of an entry) to value semantics (truthiness of the stored value:
	// true for bool, non-zero for numeric domains).
	ValueMask bool

	// Replace clears output positions for which the operation computed
	// no surviving value, instead of leaving the prior entries in
	// place. See the resolver table in mask.go.
	Replace bool
}

func (d *Descriptor) complement() bool { return d != nil && d.Complement }
func (d *Descriptor) valueMask() bool  { return d != nil && d.ValueMask }
func (d *Descriptor) replace() bool    { return d != nil && d.Replace }
