//go:build amd64 && cgo && !windows

package vs

import (
	"context"
	"fmt"

	"github.com/wasmerio/wasmer-go/wasmer"
)

func init() {
	runtimes["wasmer-go"] = newWasmerRuntime
}

func newWasmerRuntime() runtime {
	return &wasmerRuntime{}
}

type wasmerRuntime struct {
	engine *wasmer.Engine
}

type wasmerModule struct {
	store    *wasmer.Store
	module   *wasmer.Module
	instance *wasmer.Instance
	funcs    map[string]*wasmer.Function
}

func (r *wasmerRuntime) Compile(_ context.Context, _ *runtimeConfig) error {
	r.engine = wasmer.NewEngine()
	return nil
}

func (r *wasmerRuntime) Instantiate(_ context.Context, cfg *runtimeConfig) (module, error) {
	wm := &wasmerModule{funcs: map[string]*wasmer.Function{}}
	wm.store = wasmer.NewStore(r.engine)
	var err error
	if wm.module, err = wasmer.NewModule(wm.store, cfg.moduleWasm); err != nil {
		return nil, err
	}
	importObject := wasmer.NewImportObject()
	if wm.instance, err = wasmer.NewInstance(wm.module, importObject); err != nil {
		return nil, err
	}
	for _, funcName := range cfg.funcNames {
		fn, err := wm.instance.Exports.GetRawFunction(funcName)
		if err != nil {
			return nil, err
		}
		if fn == nil {
			return nil, fmt.Errorf("%s is not an exported function", funcName)
		}
		wm.funcs[funcName] = fn
	}
	return wm, nil
}

func (r *wasmerRuntime) Close() error {
	r.engine = nil
	return nil
}

func (m *wasmerModule) CallI32_I32(_ context.Context, funcName string, param int32) (int32, error) {
	fn := m.funcs[funcName]
	result, err := fn.Call(param)
	if err != nil {
		return 0, err
	}
	return result.(int32), nil
}

func (m *wasmerModule) Close() error {
	if instance := m.instance; instance != nil {
		instance.Close()
	}
	m.instance = nil
	if mod := m.module; mod != nil {
		mod.Close()
	}
	m.module = nil
	if store := m.store; store != nil {
		store.Close()
	}
	m.store = nil
	m.funcs = nil
	return nil
}
