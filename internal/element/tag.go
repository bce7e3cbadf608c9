package element

// Tag identifies an element's variant. §3 calls for "≈70 tags: literals,
// operators, declarations, statements, blocks, types, directives,
// intrinsics, references, etc." — grounded on the original's
// element_type_t enum (compiler/elements/element_types.h).
type Tag uint8

const (
	TagInvalid Tag = iota

	// Graph scaffolding.
	TagProgram
	TagModule
	TagBlock
	TagAttribute
	TagComment
	TagStatement
	TagLabel
	TagLabelReference
	TagSymbol
	TagTypeReference
	TagIdentifier
	TagIdentifierReference
	TagDeclaration
	TagField
	TagInitializer
	TagArgumentList
	TagArgumentPair

	// Types (every Tag in this group except TagTypeLiteral implements the
	// Type interface; a TypeLiteral is a type used as a value).
	TagNumericType
	TagBoolType
	TagRuneType
	TagPointerType
	TagArrayType
	TagTupleType
	TagCompositeType
	TagProcedureType
	TagNamespaceType
	TagModuleType
	TagGenericType
	TagUnknownType
	TagTypeLiteral

	// Literals.
	TagIntegerLiteral
	TagFloatLiteral
	TagBooleanLiteral
	TagStringLiteral
	TagCharacterLiteral
	TagNilLiteral
	TagUninitializedLiteral

	// Operators and calls.
	TagUnaryOperator
	TagBinaryOperator
	TagCast
	TagTransmute
	TagSpreadOperator
	TagProcedureCall

	// Control flow.
	TagIfElement
	TagWhileElement
	TagForElement
	TagSwitchElement
	TagCaseElement
	TagBreakElement
	TagContinueElement
	TagFallthroughElement
	TagReturnElement
	TagDeferElement
	TagWithElement

	// Module system.
	TagImport
	TagModuleReference
	TagNamespaceElement

	// Directives — §4.4.
	TagIfDirective
	TagElifDirective
	TagElseDirective
	TagRunDirective
	TagTypeDirective
	TagCoreTypeDirective
	TagAssertDirective
	TagAssemblyDirective
	TagForeignDirective
	TagIntrinsicDirective

	// Intrinsics — §4.5 phase 2.
	TagSizeOfIntrinsic
	TagAlignOfIntrinsic
	TagLengthOfIntrinsic
	TagAddressOfIntrinsic
	TagTypeOfIntrinsic
	TagAllocIntrinsic
	TagFreeIntrinsic
	TagRangeIntrinsic

	tagCount
)

var tagNames = [...]string{
	TagInvalid:             "invalid",
	TagProgram:              "program",
	TagModule:               "module",
	TagBlock:                "block",
	TagAttribute:            "attribute",
	TagComment:              "comment",
	TagStatement:            "statement",
	TagLabel:                "label",
	TagLabelReference:       "label_reference",
	TagSymbol:               "symbol",
	TagTypeReference:        "type_reference",
	TagIdentifier:           "identifier",
	TagIdentifierReference:  "identifier_reference",
	TagDeclaration:          "declaration",
	TagField:                "field",
	TagInitializer:          "initializer",
	TagArgumentList:         "argument_list",
	TagArgumentPair:         "argument_pair",
	TagNumericType:          "numeric_type",
	TagBoolType:             "bool_type",
	TagRuneType:             "rune_type",
	TagPointerType:          "pointer_type",
	TagArrayType:            "array_type",
	TagTupleType:            "tuple_type",
	TagCompositeType:        "composite_type",
	TagProcedureType:        "procedure_type",
	TagNamespaceType:        "namespace_type",
	TagModuleType:           "module_type",
	TagGenericType:          "generic_type",
	TagUnknownType:          "unknown_type",
	TagTypeLiteral:          "type_literal",
	TagIntegerLiteral:       "integer_literal",
	TagFloatLiteral:         "float_literal",
	TagBooleanLiteral:       "boolean_literal",
	TagStringLiteral:        "string_literal",
	TagCharacterLiteral:     "character_literal",
	TagNilLiteral:           "nil_literal",
	TagUninitializedLiteral: "uninitialized_literal",
	TagUnaryOperator:        "unary_operator",
	TagBinaryOperator:       "binary_operator",
	TagCast:                 "cast",
	TagTransmute:            "transmute",
	TagSpreadOperator:       "spread_operator",
	TagProcedureCall:        "procedure_call",
	TagIfElement:            "if_element",
	TagWhileElement:         "while_element",
	TagForElement:           "for_element",
	TagSwitchElement:        "switch_element",
	TagCaseElement:          "case_element",
	TagBreakElement:         "break_element",
	TagContinueElement:      "continue_element",
	TagFallthroughElement:   "fallthrough_element",
	TagReturnElement:        "return_element",
	TagDeferElement:         "defer_element",
	TagWithElement:          "with_element",
	TagImport:               "import",
	TagModuleReference:      "module_reference",
	TagNamespaceElement:     "namespace_element",
	TagIfDirective:          "if_directive",
	TagElifDirective:        "elif_directive",
	TagElseDirective:        "else_directive",
	TagRunDirective:         "run_directive",
	TagTypeDirective:        "type_directive",
	TagCoreTypeDirective:    "core_type_directive",
	TagAssertDirective:      "assert_directive",
	TagAssemblyDirective:    "assembly_directive",
	TagForeignDirective:     "foreign_directive",
	TagIntrinsicDirective:   "intrinsic_directive",
	TagSizeOfIntrinsic:      "size_of_intrinsic",
	TagAlignOfIntrinsic:     "align_of_intrinsic",
	TagLengthOfIntrinsic:    "length_of_intrinsic",
	TagAddressOfIntrinsic:   "address_of_intrinsic",
	TagTypeOfIntrinsic:      "type_of_intrinsic",
	TagAllocIntrinsic:       "alloc_intrinsic",
	TagFreeIntrinsic:        "free_intrinsic",
	TagRangeIntrinsic:       "range_intrinsic",
}

func (t Tag) String() string {
	if int(t) < len(tagNames) && tagNames[t] != "" {
		return tagNames[t]
	}
	return "unknown_tag"
}

// IsType reports whether elements with this tag implement the Type
// interface (§3 "Type. A specialisation of element.").
func (t Tag) IsType() bool {
	switch t {
	case TagNumericType, TagBoolType, TagRuneType, TagPointerType, TagArrayType,
		TagTupleType, TagCompositeType, TagProcedureType, TagNamespaceType,
		TagModuleType, TagGenericType, TagUnknownType:
		return true
	default:
		return false
	}
}

// IsDirective reports whether this tag is one of the directive variants.
func (t Tag) IsDirective() bool {
	switch t {
	case TagIfDirective, TagElifDirective, TagElseDirective, TagRunDirective,
		TagTypeDirective, TagCoreTypeDirective, TagAssertDirective,
		TagAssemblyDirective, TagForeignDirective, TagIntrinsicDirective:
		return true
	default:
		return false
	}
}

// IsIntrinsic reports whether this tag is one of the reserved built-in
// procedure names (§4.5 phase 2).
func (t Tag) IsIntrinsic() bool {
	switch t {
	case TagSizeOfIntrinsic, TagAlignOfIntrinsic, TagLengthOfIntrinsic,
		TagAddressOfIntrinsic, TagTypeOfIntrinsic, TagAllocIntrinsic,
		TagFreeIntrinsic, TagRangeIntrinsic:
		return true
	default:
		return false
	}
}
