// Package ir defines the read-only module representation that
// internal/codegen consumes and internal/runtime instantiates tables
// against. Producing a Module (parsing, validating) is out of scope: a
// Module here is assumed already validated by an external front end.
package ir

import "github.com/wasmkit/rtcore/api"

// Index is a position in one of a Module's index spaces (types, functions,
// tables, memories, globals, exception types).
type Index = uint32

// FunctionType is an arity-tagged tuple of value types.
type FunctionType struct {
	Params  []api.ValueType
	Results []api.ValueType
}

// Encoding is a compact integer encoding of a FunctionType, suitable for use
// as a type id at runtime (see internal/runtime's indirect-call check).
type Encoding uint64

// FunctionImport names an imported function by its two-level name and the
// type it must satisfy.
type FunctionImport struct {
	Module, Name string
	TypeIndex    Index
}

// FunctionDef is a function defined (not imported) by the module.
type FunctionDef struct {
	TypeIndex  Index
	LocalTypes []api.ValueType
	// Body is the function's instruction sequence. Its contents are opaque
	// to this package and to internal/codegen: decoding instructions is a
	// front-end concern.
	Body []byte
}

// Functions partitions a module's function index space into imports
// (indices [0, len(Imports))) followed by defs (indices
// [len(Imports), len(Imports)+len(Defs))).
type Functions struct {
	Imports []FunctionImport
	Defs    []FunctionDef
}

// Count returns the total number of functions, imported and defined.
func (f *Functions) Count() int { return len(f.Imports) + len(f.Defs) }

// IsImport returns true if funcIndex names an imported function.
func (f *Functions) IsImport(funcIndex Index) bool { return int(funcIndex) < len(f.Imports) }

// Limits bounds a table or memory's element/page count. Max is nil when the
// object is unbounded by the module (though the runtime still enforces an
// implementation-defined ceiling; see MaxTableElems).
type Limits struct {
	Min uint32
	Max *uint32
}

// MaxTableElems is the implementation-defined ceiling on a table's element
// count, independent of any module-declared Limits.Max. It exists so a
// table's 32-bit index space (the thing the core's access pattern is built
// to make cheap to bounds-check) is never exceeded regardless of what a
// module declares.
const MaxTableElems = ^uint32(0)

// TableType describes a table's element type and size bounds.
type TableType struct {
	ElementType api.ValueType
	Size        Limits
}

// MemoryType describes a memory's page-count bounds.
type MemoryType struct {
	Size Limits
}

// ConstExpr is the small constant-expression language used to initialize
// globals and element-segment offsets. Decoding its Opcode/Data is a
// front-end concern; the core only needs to know whether it denotes an
// immediate or a reference to an imported global.
type ConstExpr struct {
	IsGlobalGet bool
	// Imm is the immediate value when !IsGlobalGet.
	Imm int64
	// GlobalIndex is the imported global referenced when IsGlobalGet.
	GlobalIndex Index
}

// GlobalType describes a global's value type, mutability, and initializer.
type GlobalType struct {
	ValueType api.ValueType
	Mutable   bool
	Init      ConstExpr
}

// ExceptionType describes the parameter types carried by an exception
// (WebAssembly exception-handling proposal tag type).
type ExceptionType struct {
	Params []api.ValueType
}

// ElemKind tags a single entry of an element segment.
type ElemKind uint8

const (
	ElemRefNull ElemKind = iota
	ElemRefFunc
)

// Elem is one entry of an element segment's vector.
type Elem struct {
	Kind ElemKind
	// FuncIndex is meaningful only when Kind == ElemRefFunc.
	FuncIndex Index
}

// ElementSegment initializes a range of a table with function references (or
// nulls). TableIndex and Offset describe where; Elems is the source vector
// table.init draws from.
type ElementSegment struct {
	TableIndex Index
	Offset     ConstExpr
	Elems      []Elem
}

// Module is the read-only input to internal/codegen.EmitModule. Every field
// is an ordered list addressed by its position in the module's namespace.
type Module struct {
	Types          []FunctionType
	Functions      Functions
	Tables         []TableType
	Memories       []MemoryType
	Globals        []GlobalType
	ExceptionTypes []ExceptionType
	Elements       []ElementSegment
}

// DefaultTable returns the module's default table (index 0) and whether one
// exists. Instructions that omit an explicit table index operate on it.
func (m *Module) DefaultTable() (TableType, bool) {
	if len(m.Tables) == 0 {
		return TableType{}, false
	}
	return m.Tables[0], true
}

// DefaultMemory returns the module's default memory (index 0) and whether
// one exists.
func (m *Module) DefaultMemory() (MemoryType, bool) {
	if len(m.Memories) == 0 {
		return MemoryType{}, false
	}
	return m.Memories[0], true
}
