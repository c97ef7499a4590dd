package ast

import "fmt"

// Kind tags every concrete node type.
type Kind uint8

const (
	KindInvalid Kind = iota

	// верхний уровень и объявления
	KindFile
	KindFuncDef
	KindDecl
	KindDeclList
	KindTypedef
	KindTypeDecl
	KindIdentifierType
	KindPtrDecl
	KindArrayDecl
	KindFuncDecl
	KindParamList
	KindEllipsisParam
	KindTypename
	KindStruct
	KindUnion
	KindEnum
	KindEnumerator

	// операторы
	KindCompound
	KindExprStmt
	KindIf
	KindWhile
	KindDoWhile
	KindFor
	KindSwitch
	KindCase
	KindDefault
	KindReturn
	KindBreak
	KindContinue
	KindGoto
	KindLabel
	KindEmptyStmt

	// выражения
	KindID
	KindConstant
	KindBinaryOp
	KindUnaryOp
	KindAssignment
	KindTernaryOp
	KindFuncCall
	KindExprList
	KindArrayRef
	KindStructRef
	KindCast
	KindInitList

	kindCount
)

var kindNames = [...]string{
	KindInvalid:        "Invalid",
	KindFile:           "File",
	KindFuncDef:        "FuncDef",
	KindDecl:           "Decl",
	KindDeclList:       "DeclList",
	KindTypedef:        "Typedef",
	KindTypeDecl:       "TypeDecl",
	KindIdentifierType: "IdentifierType",
	KindPtrDecl:        "PtrDecl",
	KindArrayDecl:      "ArrayDecl",
	KindFuncDecl:       "FuncDecl",
	KindParamList:      "ParamList",
	KindEllipsisParam:  "EllipsisParam",
	KindTypename:       "Typename",
	KindStruct:         "Struct",
	KindUnion:          "Union",
	KindEnum:           "Enum",
	KindEnumerator:     "Enumerator",
	KindCompound:       "Compound",
	KindExprStmt:       "ExprStmt",
	KindIf:             "If",
	KindWhile:          "While",
	KindDoWhile:        "DoWhile",
	KindFor:            "For",
	KindSwitch:         "Switch",
	KindCase:           "Case",
	KindDefault:        "Default",
	KindReturn:         "Return",
	KindBreak:          "Break",
	KindContinue:       "Continue",
	KindGoto:           "Goto",
	KindLabel:          "Label",
	KindEmptyStmt:      "EmptyStmt",
	KindID:             "ID",
	KindConstant:       "Constant",
	KindBinaryOp:       "BinaryOp",
	KindUnaryOp:        "UnaryOp",
	KindAssignment:     "Assignment",
	KindTernaryOp:      "TernaryOp",
	KindFuncCall:       "FuncCall",
	KindExprList:       "ExprList",
	KindArrayRef:       "ArrayRef",
	KindStructRef:      "StructRef",
	KindCast:           "Cast",
	KindInitList:       "InitList",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// AllKinds returns every valid node kind in declaration order.
func AllKinds() []Kind {
	out := make([]Kind, 0, int(kindCount)-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}
