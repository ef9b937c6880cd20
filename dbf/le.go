package dbf

import "encoding/binary"

func putUint16LE(dst []byte, v uint16) { binary.LittleEndian.PutUint16(dst, v) }
func putUint32LE(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }
func readUint16LE(src []byte) uint16   { return binary.LittleEndian.Uint16(src) }
func readUint32LE(src []byte) uint32   { return binary.LittleEndian.Uint32(src) }
