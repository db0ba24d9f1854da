package retained

import "fmt"

// ContractError reports misuse of the layout protocol by the caller, such as
// arranging a node that was never measured or adding a node that already has
// a parent. It is raised with panic: these are programming errors, not
// conditions a running application can recover from.
type ContractError struct {
	Op     string
	Node   NodeID
	Reason string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("retained: %s on node %d: %s", e.Op, e.Node, e.Reason)
}

func contractViolation(op string, n *Node, reason string) {
	var id NodeID
	if n != nil {
		id = n.id
	}
	panic(&ContractError{Op: op, Node: id, Reason: reason})
}
