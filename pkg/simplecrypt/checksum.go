package simplecrypt

import "github.com/sigurn/crc16"

var x25Table = crc16.MakeTable(crc16.CRC16_X_25)

// Checksum computes the CRC-16/X.25 of data, the checksum used by ProtectionChecksum.
// This is the same function as Qt's qChecksum with the default ISO 3309 standard.
func Checksum(data []byte) uint16 {
	return crc16.Checksum(data, x25Table)
}
