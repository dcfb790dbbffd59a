package codegen

import (
	"fmt"

	goasm "github.com/twitchyliquid64/golang-asm"
	"github.com/twitchyliquid64/golang-asm/obj"
)

// assembleEntryStub builds the per-function prologue scaffolding
// golang-asm backs: a short instruction sequence marking the splice point
// where the per-opcode body emitter (opaque to this package) attaches its
// own instructions (spec.md §4.1, steps 6-7; §2 DOMAIN STACK).
//
// The stub emits no exception table entry and does not use personality:
// the personality name is recorded only on NativeImage.Personality. The
// prefix's mutable-data pointer is not encoded as an immediate operand
// here either; the loader patches it in via the external symbol manifest
// (spec.md §4.1, step 2).
func assembleEntryStub(arch string, personality string) ([]byte, error) {
	if arch == "" {
		arch = "amd64"
	}
	b, err := goasm.NewBuilder(arch, 64)
	if err != nil {
		return nil, fmt.Errorf("codegen: failed to create assembler for %s: %w", arch, err)
	}

	entry := b.NewProg()
	entry.As = obj.ANOP
	b.AddInstruction(entry)

	// Splice point: the opaque per-opcode emitter's instructions would be
	// chained in immediately after this marker.
	splice := b.NewProg()
	splice.As = obj.ANOP
	b.AddInstruction(splice)

	_ = personality // attached via the exception table, not an operand
	return b.Assemble(), nil
}
