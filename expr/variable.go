package expr

// Internal panic messages (no magic strings).
const (
	panicVarName = "expr: NewVariable: name must be non-empty"
	panicVarDims = "expr: NewVariable: rows and cols must be > 0"
)

// VarOption annotates a Variable at construction time. Safe to apply
// repeatedly (idempotent); annotations are immutable afterwards.
type VarOption func(*varConfig)

// varConfig stores the effective annotations after applying VarOption
// setters. Unexported to prevent post-construction mutation.
type varConfig struct {
	nonneg  bool
	nonpos  bool
	complex bool
}

// WithNonneg declares every entry of the variable to be ≥ 0.
func WithNonneg() VarOption {
	return func(c *varConfig) { c.nonneg = true }
}

// WithNonpos declares every entry of the variable to be ≤ 0.
func WithNonpos() VarOption {
	return func(c *varConfig) { c.nonpos = true }
}

// WithComplex declares the variable complex-valued. Complex variables
// carry no sign facts; combining WithComplex with a sign annotation keeps
// the complex flag and drops the sign.
func WithComplex() VarOption {
	return func(c *varConfig) { c.complex = true }
}

// Variable is a leaf node: an optimization variable with a fixed shape,
// a user-chosen name and optional sign/complex annotations.
type Variable struct {
	name string
	rows int
	cols int
	cfg  varConfig
}

// NewVariable creates an immutable rows×cols variable named name.
// Panics on empty name or non-positive dimensions (programmer error;
// user-facing validation belongs to atom constructors).
func NewVariable(name string, rows, cols int, opts ...VarOption) *Variable {
	if name == "" {
		panic(panicVarName)
	}
	if rows <= 0 || cols <= 0 {
		panic(panicVarDims)
	}

	var cfg varConfig
	for _, opt := range opts {
		opt(&cfg) // apply in order; last-writer-wins semantics
	}
	// A complex variable has no entrywise ordering, hence no sign facts.
	if cfg.complex {
		cfg.nonneg = false
		cfg.nonpos = false
	}

	return &Variable{name: name, rows: rows, cols: cols, cfg: cfg}
}

// Rows returns the number of rows.
func (v *Variable) Rows() int { return v.rows }

// Cols returns the number of columns.
func (v *Variable) Cols() int { return v.cols }

// Size returns the total element count.
func (v *Variable) Size() int { return v.rows * v.cols }

// Name returns the variable's display name.
func (v *Variable) Name() string { return v.name }

// IsComplex reports whether the variable was declared complex-valued.
func (v *Variable) IsComplex() bool { return v.cfg.complex }

// IsNonneg reports the entrywise-nonnegative annotation.
func (v *Variable) IsNonneg() bool { return v.cfg.nonneg }

// IsNonpos reports the entrywise-nonpositive annotation.
func (v *Variable) IsNonpos() bool { return v.cfg.nonpos }

// Sign returns the variable's sign fact pair.
func (v *Variable) Sign() Sign { return Sign{NonNeg: v.cfg.nonneg, NonPos: v.cfg.nonpos} }

// Equal reports structural equality: same name, shape and annotations.
func (v *Variable) Equal(other Node) bool {
	o, ok := other.(*Variable)

	return ok && v.name == o.name && v.rows == o.rows && v.cols == o.cols && v.cfg == o.cfg
}
