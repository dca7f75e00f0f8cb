/*
Package passkey derives simplecrypt keys from a user-provided passphrase.

# How it works:

A 64-bit key is derived from the passphrase and a random salt with scrypt.
The salt isn't secret, and must be stored alongside the encoded data so the same key can be derived later.
The KeyGenerator settings must also match, so MarshalBinary is provided to persist them with the salt if they aren't fixed by the application.

# General guidelines:
  - A strong KDF doesn't make the simplecrypt format secure. It only keeps the passphrase itself from being recovered from a key that leaked.
  - Both short and long delay iteration GeneratorOpt functions are provided, choose the correct iterations for your use-case using either SetLongDelayIterations or SetShortDelayIterations.
  - If you're not an expert, then don't use SetIterations, SetCPUCost, or SetRelativeBlockSize.
*/
package passkey
