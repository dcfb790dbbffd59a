//go:build amd64 && cgo

package vs

import (
	"context"
	"fmt"

	"github.com/bytecodealliance/wasmtime-go/v23"
)

func init() {
	runtimes["wasmtime-go"] = newWasmtimeRuntime
}

func newWasmtimeRuntime() runtime {
	return &wasmtimeRuntime{}
}

type wasmtimeRuntime struct {
	engine *wasmtime.Engine
}

type wasmtimeModule struct {
	store    *wasmtime.Store
	instance *wasmtime.Instance
	funcs    map[string]*wasmtime.Func
}

func (r *wasmtimeRuntime) Compile(_ context.Context, _ *runtimeConfig) error {
	r.engine = wasmtime.NewEngine()
	return nil
}

func (r *wasmtimeRuntime) Instantiate(_ context.Context, cfg *runtimeConfig) (module, error) {
	store := wasmtime.NewStore(r.engine)
	mod, err := wasmtime.NewModule(r.engine, cfg.moduleWasm)
	if err != nil {
		return nil, err
	}
	instance, err := wasmtime.NewInstance(store, mod, nil)
	if err != nil {
		return nil, err
	}
	wm := &wasmtimeModule{store: store, instance: instance, funcs: map[string]*wasmtime.Func{}}
	for _, name := range cfg.funcNames {
		fn := instance.GetFunc(store, name)
		if fn == nil {
			return nil, fmt.Errorf("%s is not an exported function", name)
		}
		wm.funcs[name] = fn
	}
	return wm, nil
}

func (r *wasmtimeRuntime) Close() error {
	r.engine = nil
	return nil
}

func (m *wasmtimeModule) CallI32_I32(_ context.Context, funcName string, param int32) (int32, error) {
	result, err := m.funcs[funcName].Call(m.store, param)
	if err != nil {
		return 0, err
	}
	return result.(int32), nil
}

func (m *wasmtimeModule) Close() error {
	m.instance = nil
	m.store = nil
	m.funcs = nil
	return nil
}
