package dbt

import "encoding/binary"

func putUint32LE(dst []byte, v uint32) { binary.LittleEndian.PutUint32(dst, v) }
func readUint32LE(src []byte) uint32   { return binary.LittleEndian.Uint32(src) }
