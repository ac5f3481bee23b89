package brewgo

import "github.com/brewgo/brewgo/internal"

// Node is one element of an already-parsed Brewin S-expression tree: an
// atom (a leaf token with no children) or a list of child Nodes, each
// carrying the source line number of its first token. Producing this tree
// -- the S-expression lexer/parser -- is explicitly out of this module's
// scope; Node is the minimal structural shape a caller's own parser (or
// the JSON ingestion in cmd/brewgo) must produce to drive an Engine.
//
// Node is a type alias for internal.Node rather than a distinct wrapper
// type: both Engine callers and the CORE evaluator need to build and walk
// the same tree, and a conversion layer between two parallel
// representations would only duplicate internal.Node's shape for no
// semantic gain.
type Node = internal.Node

// NewAtom builds a leaf Node holding a single token.
func NewAtom(text string, line int) Node { return internal.NewAtom(text, line) }

// NewList builds a list Node out of the given elements.
func NewList(elements ...Node) Node { return internal.NewList(elements...) }
