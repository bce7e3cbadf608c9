// Package emit lowers the resolved semantic graph to instruction
// blocks for the register-based virtual machine (§4.6). It is the
// last stage of the core: everything it produces is handed to the
// out-of-scope assembler collaborator, which resolves labels and
// writes the final byte stream.
package emit

// Opcode enumerates the typed instruction set the assembler
// collaborator accepts (§6).
type Opcode uint8

const (
	OpLoad Opcode = iota
	OpStore
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpMod
	OpCmp
	OpJmp
	OpJeq
	OpJne
	OpJgt
	OpJlt
	OpPush
	OpPop
	OpCall
	OpRet
	OpTrap
	// OpLabel declares a label at the current offset (§6 "declare a
	// label at the current offset") rather than executing anything; the
	// out-of-scope assembler collaborator strips it while resolving
	// jump targets to real offsets.
	OpLabel
)

var opcodeNames = [...]string{
	OpLoad: "load", OpStore: "store", OpAdd: "add", OpSub: "sub",
	OpMul: "mul", OpDiv: "div", OpMod: "mod", OpCmp: "cmp",
	OpJmp: "jmp", OpJeq: "jeq", OpJne: "jne", OpJgt: "jgt", OpJlt: "jlt",
	OpPush: "push", OpPop: "pop", OpCall: "call", OpRet: "ret", OpTrap: "trap",
	OpLabel: "label",
}

func (o Opcode) String() string {
	if int(o) < len(opcodeNames) {
		return opcodeNames[o]
	}
	return "invalid"
}

// OperandKind distinguishes where an instruction's operand lives.
type OperandKind uint8

const (
	OperandNone OperandKind = iota
	OperandRegister
	OperandImmediate
	OperandLabel
)

// Operand is a tagged union over register/immediate/label, avoiding
// the any-typed grab-bag the emitter's "emit_result" otherwise implies
// (§9 "model as a tagged result").
type Operand struct {
	Kind      OperandKind
	Register  uint8
	Immediate uint64
	Label     string
}

func Reg(r uint8) Operand         { return Operand{Kind: OperandRegister, Register: r} }
func Imm(v uint64) Operand        { return Operand{Kind: OperandImmediate, Immediate: v} }
func Lbl(name string) Operand     { return Operand{Kind: OperandLabel, Label: name} }
func (o Operand) IsZero() bool    { return o.Kind == OperandNone }

// Instruction is one typed VM operation with up to three operands.
type Instruction struct {
	Op   Opcode
	Dest Operand
	Src1 Operand
	Src2 Operand
}

// Block is a contiguous instruction sequence for a single procedure or
// implicit block (GLOSSARY "Instruction block"), optionally preceded
// by a label the assembler resolves jumps against.
type Block struct {
	Label        string
	Instructions []Instruction
}

func NewBlock(label string) *Block { return &Block{Label: label} }

func (b *Block) Emit(i Instruction) { b.Instructions = append(b.Instructions, i) }
