package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDisasmOp(t *testing.T) {
	tests := []struct {
		op   uint16
		want string
	}{
		{op: 0x00E0, want: "CLS"},
		{op: 0x00EE, want: "RET"},
		{op: 0x1228, want: "JP $228"},
		{op: 0x2ABC, want: "CALL $abc"},
		{op: 0x3C07, want: "SE vc, $07"},
		{op: 0x4512, want: "SNE v5, $12"},
		{op: 0x5120, want: "SE v1, v2"},
		{op: 0x6A02, want: "LD va, $02"},
		{op: 0x7B3F, want: "ADD vb, $3f"},
		{op: 0x8120, want: "LD v1, v2"},
		{op: 0x8341, want: "OR v3, v4"},
		{op: 0x8562, want: "AND v5, v6"},
		{op: 0x8783, want: "XOR v7, v8"},
		{op: 0x89A4, want: "ADD v9, va"},
		{op: 0x8BC5, want: "SUB vb, vc"},
		{op: 0x8D06, want: "SHR vd"},
		{op: 0x8EF7, want: "SUBN ve, vf"},
		{op: 0x810E, want: "SHL v1"},
		{op: 0x9340, want: "SNE v3, v4"},
		{op: 0xA2B4, want: "LD i, $2b4"},
		{op: 0xB300, want: "JP v0, $300"},
		{op: 0xC4F0, want: "RND v4, $f0"},
		{op: 0xD015, want: "DRW v0, v1, 5"},
		{op: 0xE29E, want: "SKP v2"},
		{op: 0xE3A1, want: "SKNP v3"},
		{op: 0xF507, want: "LD v5, dt"},
		{op: 0xF60A, want: "LD v6, k"},
		{op: 0xF715, want: "LD dt, v7"},
		{op: 0xF818, want: "LD st, v8"},
		{op: 0xF91E, want: "ADD i, v9"},
		{op: 0xFA29, want: "LD f, va"},
		{op: 0xFB33, want: "LD b, vb"},
		{op: 0xFC55, want: "LD [i], vc"},
		{op: 0xFD65, want: "LD vd, [i]"},

		{op: 0x0000, want: ".dw $0000"},
		{op: 0x5121, want: ".dw $5121"},
		{op: 0xF0FF, want: ".dw $f0ff"},
	}
	for _, tt := range tests {
		got := disasmOp(Opcode(tt.op))
		if got != tt.want {
			t.Errorf("disasmOp(%04x) = %q, want %q", tt.op, got, tt.want)
		}
	}
}

func TestDisassembleOpWidth(t *testing.T) {
	c := testMachine()
	assert.NoError(t, c.LoadROM([]byte{0x00, 0xE0, 0xA2, 0xB4}))
	assert.Equal(t, uint16(2), c.DisassembleOp(ProgramStart))
	assert.Equal(t, uint16(2), c.DisassembleOp(ProgramStart+2))
}
