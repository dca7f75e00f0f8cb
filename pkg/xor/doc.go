/*
Package xor provides the chained XOR transform used by the simplecrypt format.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.

# How it works:

A key schedule is cycled over the input like a ring buffer, the same way a plain XOR screen works.
The difference is that every output byte is also XORed with the previous ciphertext byte, so a change to one byte of input changes every byte that follows it.

Encryption chains on the bytes it produces, while decryption chains on the bytes it consumes.
Both start with a previous byte of 0 at position 0 of the key.

The legacy simplecrypt format derives its key schedule from a 64-bit integer with KeySchedule, which yields the integer's bytes in little-endian order.

# Important note:

The same key must be provided to reverse the process, and bytes must be processed in order from the start of the stream.
Starting a Reader in the middle of a stream will garble everything up to the first byte following the missing ones.
*/
package xor
