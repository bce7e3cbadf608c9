package emit

import "strconv"

// emitTypeInfoTable emits one read-only record per type MarkTypeUsed
// recorded, in first-use order, carrying size/alignment/number-class so
// the runtime's size_of/align_of/type_of intrinsics (§4.5 phase 2) have
// a concrete table to read at run time (§4.6 step 3).
func (e *Emitter) emitTypeInfoTable() {
	if len(e.usedOrder) == 0 {
		return
	}
	b := e.PushBlock("typeinfo")
	for i, t := range e.usedOrder {
		b.Emit(Instruction{
			Op:   OpStore,
			Dest: Lbl(TypeInfoLabel(i)),
			Src1: Imm(uint64(t.SizeInBytes())),
			Src2: Imm(uint64(t.Alignment())),
		})
	}
	e.PopBlock()
}

// TypeInfoLabel names the data label a used type's info record is
// stored under.
func TypeInfoLabel(idx int) string {
	return "typeinfo_" + strconv.Itoa(idx)
}
