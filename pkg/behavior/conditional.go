package behavior

// IfThen runs then when if succeeds. A failed condition is not an error: the
// node returns Success without touching then. Running passes through.
type IfThen struct {
	Base
	ifNode, thenNode Node
}

// NewIfThen panics if either node is nil.
func NewIfThen(description string, ifNode, thenNode Node) *IfThen {
	return &IfThen{
		Base:     NewBase(TypeIfThen, description, ifNode, thenNode),
		ifNode:   ifNode,
		thenNode: thenNode,
	}
}

func (n *IfThen) Tick() Status {
	switch n.ifNode.Tick() {
	case Success:
		return n.thenNode.Tick()
	case Running:
		return Running
	default:
		return Success
	}
}

// IfThenElse runs then when if succeeds and else when it fails. Running passes
// through without touching either branch.
type IfThenElse struct {
	Base
	ifNode, thenNode, elseNode Node
}

// NewIfThenElse panics if any node is nil.
func NewIfThenElse(description string, ifNode, thenNode, elseNode Node) *IfThenElse {
	return &IfThenElse{
		Base:     NewBase(TypeIfThenElse, description, ifNode, thenNode, elseNode),
		ifNode:   ifNode,
		thenNode: thenNode,
		elseNode: elseNode,
	}
}

func (n *IfThenElse) Tick() Status {
	switch n.ifNode.Tick() {
	case Success:
		return n.thenNode.Tick()
	case Failure:
		return n.elseNode.Tick()
	default:
		return Running
	}
}

// TryElse runs try and, only if it fails, else.
type TryElse struct {
	Base
	tryNode, elseNode Node
}

// NewTryElse panics if either node is nil.
func NewTryElse(description string, tryNode, elseNode Node) *TryElse {
	return &TryElse{
		Base:     NewBase(TypeTryElse, description, tryNode, elseNode),
		tryNode:  tryNode,
		elseNode: elseNode,
	}
}

func (n *TryElse) Tick() Status {
	switch n.tryNode.Tick() {
	case Success:
		return Success
	case Running:
		return Running
	}
	return n.elseNode.Tick()
}
