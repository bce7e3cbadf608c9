package emit

import (
	"math"

	"surge/internal/diag"
	"surge/internal/element"
)

// lower emits the instructions for one expression element and returns
// the operand that holds its value once those instructions have run.
// Literals load an immediate; identifier references load a frame slot;
// operators allocate a temp, emit their operands left-then-right, and
// free the operand temps before returning (§4.6 "Element emission").
func (e *Emitter) lower(el element.Element) (Operand, error) {
	switch v := el.(type) {
	case *element.IntegerLiteral:
		return Imm(v.Value), nil
	case *element.FloatLiteral:
		return Imm(math.Float64bits(v.Value)), nil
	case *element.BooleanLiteral:
		if v.Value {
			return Imm(1), nil
		}
		return Imm(0), nil
	case *element.CharacterLiteral:
		return Imm(uint64(v.Value)), nil
	case *element.StringLiteral:
		return Lbl(StringLabel(e.InternString(v.Value))), nil
	case *element.NilLiteral:
		return Imm(0), nil
	case *element.IdentifierReference:
		return e.lowerIdentifierReference(v)
	case *element.UnaryOperator:
		return e.lowerUnary(v)
	case *element.BinaryOperator:
		return e.lowerBinary(v)
	case *element.ProcedureCall:
		return e.lowerCall(v)
	case *element.Intrinsic:
		return e.lowerIntrinsic(v)
	case *element.Cast:
		if v.TypeRf != nil {
			e.MarkTypeUsed(v.TypeRf.Resolved())
		}
		return e.lower(v.Expr)
	case *element.Transmute:
		if v.TypeRf != nil {
			e.MarkTypeUsed(v.TypeRf.Resolved())
		}
		return e.lower(v.Expr)
	case *element.SpreadOperator:
		return e.lower(v.Expr)
	default:
		return Operand{}, nil
	}
}

func (e *Emitter) lowerIdentifierReference(r *element.IdentifierReference) (Operand, error) {
	id := r.Identifier()
	if id == nil || id.Sym == nil {
		return Operand{}, nil
	}
	dest, err := e.AllocateTemp(r.Location())
	if err != nil {
		return Operand{}, err
	}
	b := e.CurrentBlock()
	if b != nil {
		b.Emit(Instruction{Op: OpLoad, Dest: Reg(dest), Src1: Lbl(id.Sym.Qualified())})
	}
	return Reg(dest), nil
}

func (e *Emitter) lowerUnary(u *element.UnaryOperator) (Operand, error) {
	operand, err := e.lower(u.Operand)
	if err != nil {
		return Operand{}, err
	}
	b := e.CurrentBlock()
	switch u.Op {
	case element.UnaryAddressOf:
		dest, err := e.AllocateTemp(u.Location())
		if err != nil {
			return Operand{}, err
		}
		if b != nil {
			b.Emit(Instruction{Op: OpLoad, Dest: Reg(dest), Src1: operand})
		}
		return Reg(dest), nil
	case element.UnaryDeref:
		dest, err := e.AllocateTemp(u.Location())
		if err != nil {
			return Operand{}, err
		}
		if b != nil {
			b.Emit(Instruction{Op: OpLoad, Dest: Reg(dest), Src1: operand})
		}
		return Reg(dest), nil
	case element.UnaryNeg:
		dest, err := e.AllocateTemp(u.Location())
		if err != nil {
			return Operand{}, err
		}
		if b != nil {
			b.Emit(Instruction{Op: OpSub, Dest: Reg(dest), Src1: Imm(0), Src2: operand})
		}
		return Reg(dest), nil
	default:
		// Not/BitwiseNot have no dedicated opcode (§6); trap to the VM's
		// library implementation keyed by the operator's ordinal.
		dest, err := e.AllocateTemp(u.Location())
		if err != nil {
			return Operand{}, err
		}
		if b != nil {
			b.Emit(Instruction{Op: OpTrap, Dest: Reg(dest), Src1: Imm(uint64(u.Op)), Src2: operand})
		}
		return Reg(dest), nil
	}
}

var binaryOpcodes = map[element.BinaryOp]Opcode{
	element.BinaryAdd: OpAdd,
	element.BinarySub: OpSub,
	element.BinaryMul: OpMul,
	element.BinaryDiv: OpDiv,
	element.BinaryMod: OpMod,
}

// lowerBinary emits the left operand, then the right operand, then the
// operator itself, matching §4.6's "left-then-right" evaluation order;
// both operand temps are freed once the combining instruction is
// emitted. Comparisons lower to a single cmp into the destination
// temp; assignment stores the right-hand value into the
// left-hand slot; member access resolves to a base-address-plus-offset
// load.
func (e *Emitter) lowerBinary(bin *element.BinaryOperator) (Operand, error) {
	if bin.Op.IsAssignment() {
		return e.lowerAssign(bin)
	}
	if bin.Op == element.BinaryMember {
		return e.lowerMember(bin)
	}

	left, err := e.lower(bin.Left)
	if err != nil {
		return Operand{}, err
	}
	right, err := e.lower(bin.Right)
	if err != nil {
		return Operand{}, err
	}
	defer e.FreeTemp()
	defer e.FreeTemp()

	dest, err := e.AllocateTemp(bin.Location())
	if err != nil {
		return Operand{}, err
	}
	b := e.CurrentBlock()

	if bin.Op.IsComparison() {
		if b != nil {
			b.Emit(Instruction{Op: OpCmp, Dest: Reg(dest), Src1: left, Src2: right})
		}
		return Reg(dest), nil
	}

	// Bitwise/logical/shift operators have no dedicated opcode in the
	// fixed instruction set (§6); the VM collaborator implements them
	// as trapped library calls keyed by the operator's ordinal.
	op, ok := binaryOpcodes[bin.Op]
	if !ok {
		if b != nil {
			b.Emit(Instruction{Op: OpTrap, Dest: Reg(dest), Src1: Imm(uint64(bin.Op)), Src2: right})
		}
		return Reg(dest), nil
	}
	if b != nil {
		b.Emit(Instruction{Op: op, Dest: Reg(dest), Src1: left, Src2: right})
	}
	return Reg(dest), nil
}

func (e *Emitter) lowerAssign(bin *element.BinaryOperator) (Operand, error) {
	right, err := e.lower(bin.Right)
	if err != nil {
		return Operand{}, err
	}
	defer e.FreeTemp()

	ref, ok := bin.Left.(*element.IdentifierReference)
	if !ok {
		d := diag.NewError(diag.CTypeMismatch, bin.Location(), "assignment target is not a storable location")
		e.Bag.Add(&d)
		return Operand{}, nil
	}
	id := ref.Identifier()
	if id == nil || id.Sym == nil {
		return Operand{}, nil
	}
	b := e.CurrentBlock()
	if b != nil {
		b.Emit(Instruction{Op: OpStore, Dest: Lbl(id.Sym.Qualified()), Src1: right})
	}
	return right, nil
}

// lowerMember emits the base address followed by a load offset by the
// field's position within its composite layout (§4.6 "base address
// plus field offset, then deref").
func (e *Emitter) lowerMember(bin *element.BinaryOperator) (Operand, error) {
	base, err := e.lower(bin.Left)
	if err != nil {
		return Operand{}, err
	}
	defer e.FreeTemp()

	offset := 0
	if bin.Left != nil {
		if lt, ok, _ := bin.Left.InferType(e.Registry); ok {
			if ct, isComposite := lt.(*element.CompositeType); isComposite {
				if sym, isSym := bin.Right.(*element.Symbol); isSym {
					if f, found := ct.FieldNamed(sym.Name); found {
						offset = f.Offset
					}
				}
			}
		}
	}

	dest, err := e.AllocateTemp(bin.Location())
	if err != nil {
		return Operand{}, err
	}
	b := e.CurrentBlock()
	if b != nil {
		b.Emit(Instruction{Op: OpLoad, Dest: Reg(dest), Src1: base, Src2: Imm(uint64(offset))})
	}
	return Reg(dest), nil
}

func (e *Emitter) lowerCall(call *element.ProcedureCall) (Operand, error) {
	if call.Args != nil {
		for _, arg := range call.Args.Elements {
			v, err := e.lower(arg)
			if err != nil {
				return Operand{}, err
			}
			b := e.CurrentBlock()
			if b != nil {
				b.Emit(Instruction{Op: OpPush, Dest: v})
			}
			e.FreeTemp()
		}
	}
	callee := ""
	if call.Callee != nil && call.Callee.Identifier() != nil && call.Callee.Identifier().Sym != nil {
		callee = call.Callee.Identifier().Sym.Qualified()
	}
	b := e.CurrentBlock()
	if b != nil {
		b.Emit(Instruction{Op: OpCall, Dest: Lbl(callee)})
	}
	dest, err := e.AllocateTemp(call.Location())
	if err != nil {
		return Operand{}, err
	}
	if b != nil {
		b.Emit(Instruction{Op: OpPop, Dest: Reg(dest)})
	}
	return Reg(dest), nil
}

// lowerIntrinsic lowers size_of/align_of/length_of/address_of to a load
// of an immediate holding the intrinsic's kind; the argument is not
// lowered and no type-info table entry is referenced. alloc/free/range/
// type_of lower to traps the VM collaborator interprets (§4.6, §6).
func (e *Emitter) lowerIntrinsic(in *element.Intrinsic) (Operand, error) {
	dest, err := e.AllocateTemp(in.Location())
	if err != nil {
		return Operand{}, err
	}
	b := e.CurrentBlock()
	if b == nil {
		return Reg(dest), nil
	}
	switch in.Kind {
	case element.IntrinsicAlloc, element.IntrinsicFree, element.IntrinsicRange, element.IntrinsicTypeOf:
		b.Emit(Instruction{Op: OpTrap, Dest: Reg(dest), Src1: Imm(uint64(in.Kind))})
	default:
		b.Emit(Instruction{Op: OpLoad, Dest: Reg(dest), Src1: Imm(uint64(in.Kind))})
	}
	return Reg(dest), nil
}
