// Package isa describes the 48-bit instruction set: mnemonics, their
// formats, field bit widths and the word layout.
//
// Every word carries a 5-bit opcode in bits 0-4 that selects a format group
// and a 3-bit function selector in bits 5-7 that selects the mnemonic within
// the group. Bits 8-47 depend on the format:
//
//	R      rd[8-12]  rs1[13-17] rs2[18-22] reserved[23-47]
//	I/J/L  rd[8-12]  rs1[13-15] imm[16-47]
//	S      rs2[8-12] rs1[13-15] imm[16-47]
//	B      rd[8-12]  rs1[13-17] rs2[18-22] disp[23-47]
//
// The rd field of a branch is required by the assembler syntax but unused
// by the processor.
package isa
