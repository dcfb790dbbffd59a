//go:build amd64 && cgo

package vs

// buildTableIndirectCallModule hand-assembles a minimal WebAssembly binary
// with one (i32)->i32 type, a one-slot funcref table populated by an
// element segment, a defined function implementing that type, and an
// exported "run" function that invokes it through call_indirect. It
// exists only to give the vs benchmarks a real .wasm payload without
// depending on a text-format assembler, which is out of this module's
// scope (spec.md §1, Non-goals: "parsing the module binary or text
// forms").
func buildTableIndirectCallModule() []byte {
	var b wasmBuilder
	b.bytes([]byte{0x00, 0x61, 0x73, 0x6d}) // magic
	b.bytes([]byte{0x01, 0x00, 0x00, 0x00}) // version

	// Type section: one (i32) -> i32 function type.
	funcType := wasmBuilder{}
	funcType.byte(0x60) // func
	funcType.uleb(1)
	funcType.byte(0x7f) // i32
	funcType.uleb(1)
	funcType.byte(0x7f) // i32
	b.section(1, func(s *wasmBuilder) {
		s.uleb(1)
		s.bytes(funcType.buf)
	})

	// Function section: two defined functions (callee and "run"), both
	// type index 0.
	b.section(3, func(s *wasmBuilder) {
		s.uleb(2)
		s.uleb(0)
		s.uleb(0)
	})

	// Table section: one funcref table, min=max=1.
	b.section(4, func(s *wasmBuilder) {
		s.uleb(1)
		s.byte(0x70) // funcref
		s.byte(0x01) // has max
		s.uleb(1)
		s.uleb(1)
	})

	// Export section: export function index 1 ("run" is the second
	// function: index 0 is the callee, index 1 is the caller).
	b.section(7, func(s *wasmBuilder) {
		s.uleb(1)
		s.name("run")
		s.byte(0x00) // func
		s.uleb(1)
	})

	// Element section: table 0, offset 0, one entry: function index 0.
	b.section(9, func(s *wasmBuilder) {
		s.uleb(1)
		s.uleb(0) // flags: active, table index implicit 0
		s.byte(0x41)
		s.sleb(0)
		s.byte(0x0b) // end
		s.uleb(1)
		s.uleb(0)
	})

	// Code section: two functions.
	// Function 0: (i32.add (local.get 0) (i32.const 1))
	callee := wasmBuilder{}
	callee.uleb(0) // no locals
	callee.byte(0x20)
	callee.uleb(0) // local.get 0
	callee.byte(0x41)
	callee.sleb(1) // i32.const 1
	callee.byte(0x6a) // i32.add
	callee.byte(0x0b) // end

	// Function 1 ("run"): (call_indirect (type 0) (local.get 0) (i32.const 0))
	caller := wasmBuilder{}
	caller.uleb(0) // no locals
	caller.byte(0x20)
	caller.uleb(0) // local.get 0
	caller.byte(0x41)
	caller.sleb(0) // i32.const 0 (table slot)
	caller.byte(0x11)
	caller.uleb(0) // call_indirect type 0
	caller.uleb(0) // table index 0
	caller.byte(0x0b) // end

	b.section(10, func(s *wasmBuilder) {
		s.uleb(2)
		s.uleb(uint32(len(callee.buf)))
		s.bytes(callee.buf)
		s.uleb(uint32(len(caller.buf)))
		s.bytes(caller.buf)
	})

	return b.buf
}

// wasmBuilder is a tiny byte-string builder with LEB128 helpers, used only
// to hand-assemble the benchmark payload above.
type wasmBuilder struct{ buf []byte }

func (b *wasmBuilder) byte(v byte)     { b.buf = append(b.buf, v) }
func (b *wasmBuilder) bytes(v []byte)  { b.buf = append(b.buf, v...) }

func (b *wasmBuilder) name(s string) {
	b.uleb(uint32(len(s)))
	b.bytes([]byte(s))
}

func (b *wasmBuilder) uleb(v uint32) {
	for {
		c := byte(v & 0x7f)
		v >>= 7
		if v != 0 {
			b.buf = append(b.buf, c|0x80)
		} else {
			b.buf = append(b.buf, c)
			return
		}
	}
}

func (b *wasmBuilder) sleb(v int32) {
	more := true
	for more {
		c := byte(v & 0x7f)
		v >>= 7
		if (v == 0 && c&0x40 == 0) || (v == -1 && c&0x40 != 0) {
			more = false
		} else {
			c |= 0x80
		}
		b.buf = append(b.buf, c)
	}
}

func (b *wasmBuilder) section(id byte, body func(*wasmBuilder)) {
	var s wasmBuilder
	body(&s)
	b.byte(id)
	b.uleb(uint32(len(s.buf)))
	b.bytes(s.buf)
}
