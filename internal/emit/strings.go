package emit

import (
	"strconv"

	"surge/internal/element"
)

// internStringLiterals walks every StringLiteral element in the
// registry and interns its value, so the table emitted by
// emitInternedStringTable contains exactly the strings the program
// actually references (§4.6 step 2).
func (e *Emitter) internStringLiterals() {
	for _, id := range e.Registry.FindByTag(element.TagStringLiteral) {
		lit, ok := e.Registry.Get(id).(*element.StringLiteral)
		if !ok {
			continue
		}
		e.InternString(lit.Value)
	}
}

// emitInternedStringTable emits one read-only data block holding the
// table built by InternString, indexed in the order strings were first
// seen so references elsewhere (Lbl("str_<n>")) stay stable.
func (e *Emitter) emitInternedStringTable() {
	if len(e.internOrder) == 0 {
		return
	}
	b := e.PushBlock("strtab")
	for i, s := range e.internOrder {
		b.Emit(Instruction{
			Op:   OpStore,
			Dest: Lbl(StringLabel(i)),
			Src1: Imm(uint64(len(s))),
		})
	}
	e.PopBlock()
}

// StringLabel names the data label an interned string is stored under.
func StringLabel(idx int) string {
	return "str_" + strconv.Itoa(idx)
}
