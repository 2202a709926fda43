/*
Package xor provides single-byte XOR screening of files and decoded images.

Note that this is NOT encryption, since it is easily reversible.
This falls squarely under the obfuscation category.
As such, it is NOT recommended for security critical use.
Anyone with a sample of the original input, or enough patience to try all 256 keys, can recover the data.

# How it works:

A Key is a single byte. Every unit that passes through Apply, Bytes, Reader, or Writer is combined with the Key using a bitwise XOR.
A unit is anything with an underlying uint8 type, so the same primitive screens raw file bytes and decoded RGB channel samples alike.

Keys are usually entered as integers by a person. ParseKey and KeyFromInt reduce any integer to its low 8 bits, so 261 and 5 are the same Key, and -1 is 255.

# Important note:

XOR with a fixed key is its own inverse.
Screening the output a second time with the same Key recovers the original input exactly, which is how "decryption" works.
Using a different Key will produce garbled output, not an error.
*/
package xor
