package loader

// Factory constructs a single export of a Namespace.
type Factory func() any

// Namespace is a named set of exported controller factories.
// Exports are iterated in the order they were added.
type Namespace struct {
	name    string
	symbols []string
	exports map[string]Factory
}

// NewNamespace creates an empty namespace.
func NewNamespace(name string) *Namespace {
	return &Namespace{
		name:    name,
		exports: make(map[string]Factory),
	}
}

// Name returns the namespace name.
func (n *Namespace) Name() string {
	return n.name
}

// Export adds a factory under symbol. Re-exporting a symbol replaces its
// factory but keeps its original position.
func (n *Namespace) Export(symbol string, f Factory) *Namespace {
	if _, ok := n.exports[symbol]; !ok {
		n.symbols = append(n.symbols, symbol)
	}
	n.exports[symbol] = f
	return n
}

// Symbols returns the exported symbols in export order.
func (n *Namespace) Symbols() []string {
	out := make([]string, len(n.symbols))
	copy(out, n.symbols)
	return out
}

// Lookup returns the factory exported under symbol.
func (n *Namespace) Lookup(symbol string) (Factory, bool) {
	f, ok := n.exports[symbol]
	return f, ok
}
