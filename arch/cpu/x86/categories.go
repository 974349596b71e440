package x86

import "github.com/retroenv/retro86/set"

// BranchingInstructions contains all instructions that can change control
// flow. Used by debuggers and analysis tooling to identify branch points.
var BranchingInstructions = set.NewFromSlice([]string{
	CallName,
	JaName,
	JbeName,
	JcName,
	JcxzName,
	JgName,
	JgeName,
	JlName,
	JleName,
	JmpName,
	JncName,
	JnoName,
	JnpName,
	JnsName,
	JnzName,
	JoName,
	JpName,
	JsName,
	JzName,
	RetName,
})

// NotExecutingFollowingOpcodeInstructions contains instructions that never
// fall through to the following opcode.
var NotExecutingFollowingOpcodeInstructions = set.NewFromSlice([]string{
	JmpName,
	RetName,
})

// MemoryWriteInstructions contains instructions that can write to memory.
var MemoryWriteInstructions = set.NewFromSlice([]string{
	AddName,
	CallName,
	EnterName,
	MovName,
	PushName,
	PushfName,
	StosbName,
	StoswName,
	XorName,
})
