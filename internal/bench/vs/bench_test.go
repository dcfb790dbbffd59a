//go:build amd64 && cgo

package vs

import (
	"context"
	"testing"
)

// BenchmarkCallIndirect measures every registered runtime's call_indirect
// dispatch through a one-slot table (spec.md §2 DOMAIN STACK). The
// registered runtimes are wasmtime-go and wasmer-go; this module's own
// internal/runtime Tables are not among them.
func BenchmarkCallIndirect(b *testing.B) {
	ctx := context.Background()
	cfg := &runtimeConfig{moduleWasm: tableIndirectCallWasm, funcNames: []string{"run"}}

	for name, newRuntime := range runtimes {
		b.Run(name, func(b *testing.B) {
			rt := newRuntime()
			defer rt.Close()
			if err := rt.Compile(ctx, cfg); err != nil {
				b.Fatal(err)
			}
			mod, err := rt.Instantiate(ctx, cfg)
			if err != nil {
				b.Fatal(err)
			}
			defer mod.Close()

			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := mod.CallI32_I32(ctx, "run", int32(i)); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
