package sat

// lit is a literal in compact form: CNF variable v with positive polarity
// encodes as 2*(v-1), with negative polarity as 2*(v-1)+1.
type lit int32

const litUndef lit = -1

func litFromInt(i int) lit {
	if i < 0 {
		return lit(2*(-i-1) + 1)
	}
	return lit(2 * (i - 1))
}

func posLit(v int) lit {
	return lit(2 * v)
}

// index returns the 0-based variable index of the literal.
func (l lit) index() int {
	return int(l >> 1)
}

func (l lit) sign() bool {
	return l&1 == 1
}

func (l lit) neg() lit {
	return l ^ 1
}

// cnf returns the literal in signed DIMACS form.
func (l lit) cnf() int {
	v := int(l>>1) + 1
	if l.sign() {
		return -v
	}
	return v
}

// lbool is a three-valued assignment state.
type lbool uint8

const (
	lUndef lbool = iota
	lTrue
	lFalse
)

func boolToLbool(b bool) lbool {
	if b {
		return lTrue
	}
	return lFalse
}
