package cpu

import (
	"fmt"
)

// Instruction is the decoded form of a single opcode. It is produced once
// per cycle and not retained across cycles.
type Instruction struct {
	// Opcode is the raw big-endian 16-bit instruction word.
	Opcode uint16
	// NNN is the low 12 bits, an address.
	NNN uint16
	// NN is the low 8 bits, an immediate byte.
	NN uint8
	// N is the low 4 bits.
	N uint8
	// X is bits 8-11, a register index.
	X uint8
	// Y is bits 4-7, a register index.
	Y uint8
}

// DecodeOpcode extracts the instruction fields from opcode.
func DecodeOpcode(opcode uint16) Instruction {
	return Instruction{
		Opcode: opcode,
		NNN:    opcode & 0x0FFF,
		NN:     uint8(opcode),
		N:      uint8(opcode) & 0x0F,
		X:      uint8(opcode>>8) & 0x0F,
		Y:      uint8(opcode>>4) & 0x0F,
	}
}

// Decode combines the two bytes at PC and PC+1 big-endian and decodes the
// resulting opcode.
func Decode(hi, lo byte) Instruction {
	return DecodeOpcode(uint16(hi)<<8 | uint16(lo))
}

// Family returns the top nibble of the opcode.
func (i Instruction) Family() uint8 {
	return uint8(i.Opcode >> 12)
}

func (i Instruction) String() string {
	return fmt.Sprintf("%04X", i.Opcode)
}

// Operation is an entry in one of the dispatch tables.
type Operation struct {
	name string
	fn   func(*CPU, Instruction) error
}

// Name returns the mnemonic of the operation, or "unknown" for an
// unrecognised opcode.
func (o Operation) Name() string {
	if o.fn == nil {
		return "unknown"
	}
	return o.name
}

// Known reports whether the operation has an implementation.
func (o Operation) Known() bool {
	return o.fn != nil
}

var (
	// InstructionSet is indexed by the top nibble of the opcode. The 0, 8,
	// E and F families are resolved further through their own tables.
	InstructionSet [16]Operation

	systemSet [256]Operation // 00NN, by NN
	aluSet    [16]Operation  // 8XYN, by N
	keySet    [256]Operation // EXNN, by NN
	miscSet   [256]Operation // FXNN, by NN
)

// DefineInstruction defines the operation for a whole opcode family in
// the InstructionSet.
func DefineInstruction(family uint8, name string, fn func(*CPU, Instruction) error) {
	InstructionSet[family&0xF] = Operation{name: name, fn: fn}
}

// DefineSystem defines a 00NN operation.
func DefineSystem(nn uint8, name string, fn func(*CPU, Instruction) error) {
	systemSet[nn] = Operation{name: name, fn: fn}
}

// DefineALU defines an 8XYN operation.
func DefineALU(n uint8, name string, fn func(*CPU, Instruction) error) {
	aluSet[n&0xF] = Operation{name: name, fn: fn}
}

// DefineKey defines an EXNN operation.
func DefineKey(nn uint8, name string, fn func(*CPU, Instruction) error) {
	keySet[nn] = Operation{name: name, fn: fn}
}

// DefineMisc defines an FXNN operation.
func DefineMisc(nn uint8, name string, fn func(*CPU, Instruction) error) {
	miscSet[nn] = Operation{name: name, fn: fn}
}

// Lookup resolves the operation for a decoded instruction. The returned
// operation is not Known for unrecognised opcodes.
func Lookup(i Instruction) Operation {
	switch i.Family() {
	case 0x0:
		if i.X != 0 {
			return Operation{} // 0NNN machine code routines
		}
		return systemSet[i.NN]
	case 0x5, 0x9:
		if i.N != 0 {
			return Operation{}
		}
	case 0x8:
		return aluSet[i.N]
	case 0xE:
		return keySet[i.NN]
	case 0xF:
		return miscSet[i.NN]
	}
	return InstructionSet[i.Family()]
}
