package virty

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when a setter receives a value of the
	// wrong shape, such as a name that is empty after trimming.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrOperationNotSupported is returned when a structural or attribute
	// operation is invoked on a node type that forbids it.
	ErrOperationNotSupported = errors.New("operation not supported")

	// ErrNoParent is returned by sibling operations on a parentless node.
	ErrNoParent = errors.New("node has no parent")

	// ErrUnregisteredType is returned when an unknown node type value is
	// supplied at construction or type change.
	ErrUnregisteredType = errors.New("unregistered node type")
)

func unsupportedOp(op string, t NodeType) error {
	return fmt.Errorf("%s: %w for %s nodes", op, ErrOperationNotSupported, t)
}

func invalidArg(op, msg string) error {
	return fmt.Errorf("%s: %w: %s", op, ErrInvalidArgument, msg)
}
