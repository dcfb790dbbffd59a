//go:build amd64 && cgo

// Package vs benchmarks wasmtime-go and wasmer-go on the same compiled
// .wasm bytes, a table/call_indirect workload that serves as a point of
// comparison for this module's Tables hot path (which has no adapter
// here and is not run by these benchmarks), mirroring the
// structure of wazero's internal/integration_test/vs: a small harness
// interface each competing runtime implements, registered into a shared
// map so the benchmark loop iterates every registered runtime uniformly.
package vs

import "context"

// runtimeConfig names the workload every registered runtime compiles and
// runs: a table.get/call_indirect-shaped module, grounded on spec.md
// §4.2/§4.3's indirect-call hot path.
type runtimeConfig struct {
	moduleWasm []byte
	funcNames  []string
}

// module is a compiled, instantiated module ready to call.
type module interface {
	// CallI32_I32 invokes funcName, a (i32) -> i32 export, and returns its
	// result.
	CallI32_I32(ctx context.Context, funcName string, param int32) (int32, error)
	Close() error
}

// runtime is one competing WebAssembly engine.
type runtime interface {
	Compile(ctx context.Context, cfg *runtimeConfig) error
	Instantiate(ctx context.Context, cfg *runtimeConfig) (module, error)
	Close() error
}

// runtimes is populated by each adapter file's init(), keyed by the
// runtime's display name.
var runtimes = map[string]func() runtime{}

// tableIndirectCallWasm is the shared workload: a module with a one-slot
// funcref table, one defined function added via an element segment, and
// an exported "run" function that dispatches to it through call_indirect
// (spec.md §4.2/§4.3, the intrinsic surface these benchmarks exercise).
var tableIndirectCallWasm = buildTableIndirectCallModule()
