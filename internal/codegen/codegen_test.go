package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/wasmkit/rtcore/api"
	"github.com/wasmkit/rtcore/internal/intset"
	"github.com/wasmkit/rtcore/internal/ir"
)

func sampleModule() *ir.Module {
	max := uint32(10)
	return &ir.Module{
		Types: []ir.FunctionType{{Params: []api.ValueType{api.ValueTypeI32}, Results: []api.ValueType{api.ValueTypeI32}}},
		Functions: ir.Functions{
			Imports: []ir.FunctionImport{{Module: "env", Name: "log", TypeIndex: 0}},
			Defs:    []ir.FunctionDef{{TypeIndex: 0}},
		},
		Tables: []ir.TableType{{ElementType: api.ValueTypeFuncRef, Size: ir.Limits{Min: 1, Max: &max}}},
	}
}

func TestEmitModuleLinux(t *testing.T) {
	img, err := EmitModule(sampleModule(), Target{Triple: "x86_64-unknown-linux-gnu", GOARCH: "amd64"})
	require.NoError(t, err)
	require.Equal(t, "__gxx_personality_v0", img.Personality)
	require.Nil(t, img.TypeDescriptor)
	require.Equal(t, "tableOffset[0]", img.DefaultTable)
	require.Empty(t, img.DefaultMemory)
	require.Contains(t, img.Functions, "functionImport[0]")
	require.Contains(t, img.Functions, "functionDef[0]")
	require.True(t, len(img.Functions["functionDef[0]"]) > prefixSize)
	require.Zero(t, img.LegalizedLaneWidthBits)
}

func TestLegalizationThresholdBitsForPartialLaneSupport(t *testing.T) {
	widths := intset.New(numLaneWidths)
	widths.Add(LaneWidth8)
	widths.Add(LaneWidth16)
	widths.Add(LaneWidth64) // LaneWidth32 left unset

	target := Target{GOARCH: "amd64", SIMDLaneWidths: widths}
	require.Equal(t, 32, target.LegalizationThresholdBits())

	img, err := EmitModule(sampleModule(), target)
	require.NoError(t, err)
	require.Equal(t, 32, img.LegalizedLaneWidthBits)
}

func TestLegalizationThresholdBitsNilMeansEveryWidthNative(t *testing.T) {
	target := Target{GOARCH: "amd64"}
	require.Zero(t, target.LegalizationThresholdBits())
}

func TestEmitModuleWindowsSEH(t *testing.T) {
	img, err := EmitModule(sampleModule(), Target{Triple: "x86_64-pc-windows-msvc", WindowsSEH: true, GOARCH: "amd64"})
	require.NoError(t, err)
	require.Equal(t, "__CxxFrameHandler3", img.Personality)
	require.NotNil(t, img.TypeDescriptor)
	require.Empty(t, img.Manifest.RuntimeExceptionTypeInfo)
}

func TestEmitModuleDeterministic(t *testing.T) {
	mod := sampleModule()
	target := Target{GOARCH: "amd64"}
	img1, err := EmitModule(mod, target)
	require.NoError(t, err)
	img2, err := EmitModule(mod, target)
	require.NoError(t, err)
	require.Equal(t, img1.Functions["functionDef[0]"], img2.Functions["functionDef[0]"])
	require.Equal(t, img1.Manifest.FunctionDef, img2.Manifest.FunctionDef)
}

func TestSymbolManifestDescribe(t *testing.T) {
	m := NewSymbolManifest(1, 1, 0, 0, 0, 0, 2, false)
	m.Bind(m.FunctionDef[0], 0x1000)
	m.Bind(m.FunctionDef[1], 0x2000)
	require.Equal(t, "functionDef[0]+0x10", m.Describe(0x1010))
	require.Equal(t, "functionDef[1]+0x0", m.Describe(0x2000))
	require.Contains(t, m.Describe(0x10), "<unresolved")
}

func TestDebugTypesAnyHasNone(t *testing.T) {
	d := NewDebugTypes()
	require.Nil(t, d.For(api.ValueTypeAny))
	require.NotNil(t, d.For(api.ValueTypeI32))
	ref := d.For(api.ValueTypeFuncRef)
	require.True(t, ref.IsAddressKind)
	require.Equal(t, uint8(8), ref.SizeBits)
}
