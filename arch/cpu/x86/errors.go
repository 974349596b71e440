package x86

import "errors"

// Common x86 CPU errors.
var (
	ErrNilBus           = errors.New("memory bus is nil")
	ErrUnknownOpcode    = errors.New("unknown opcode")
	ErrUnknownExtension = errors.New("unknown opcode extension")
	ErrIllegalOperand   = errors.New("illegal operand")
)
