/*
Package word implements elementary operations on individual strings.

A string is treated as a finite sequence of symbols, one symbol per Unicode
code point. No normalization is applied: "é" written as one code point and as
"e" plus a combining accent are different strings of different lengths.

All functions are pure and safe for concurrent use.
*/
package word
