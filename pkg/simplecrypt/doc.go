/*
Package simplecrypt reads and writes the version 3 "simple crypt" format, a light-weight obfuscation scheme keyed with a 64-bit integer.

Note that this is NOT encryption in any meaningful sense.
The transform is a chained XOR over an 8-byte key schedule, which is trivially broken by anyone that looks for it.
It's useful for keeping config values or cached strings from casual inspection, and for reading blobs written by existing applications that use the same format.

# How it works:

A payload is optionally compressed, then an integrity trailer (a 16-bit checksum or a SHA-1 hash) is computed over it.
A single random byte and the trailer are placed in front of the payload, and the whole sequence is put through the chained XOR.
Finally, a version byte and a flags byte are prepended so the reader knows how to reverse each step.

	byte 0     : version, always 3
	byte 1     : flags (0x01 compressed, 0x02 checksum, 0x04 hash)
	bytes 2..N : chained XOR of random(1) + trailer(0, 2, or 20) + payload

A compressed payload is a big-endian uint32 holding the uncompressed length followed by a zlib stream.

The checksum is CRC-16/X.25, which is what the original implementation used, so blobs written by either side can be read by the other.

# General guidelines:
  - Because of the random byte, encrypting the same plaintext twice yields different blobs. Don't compare blobs to compare payloads.
  - Use ProtectionHash if there's any concern about accidental corruption going undetected, a 16-bit checksum will miss about 1 in 65536 corruptions.
  - A Codec may be shared between goroutines. Changing the key or modes while other goroutines are encrypting is safe, but each call will use whichever settings were current when it started.
  - Use EncryptText and DecryptText for text contexts like config files, they take care of UTF-8 and Base64 for you.
*/
package simplecrypt
