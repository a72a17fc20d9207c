// Package tables contains the constant tables for UO decoding.
//
// This includes the pitch lag coefficient book, the LSF quantization tables,
// the excitation codebook with its delta gains, and the gain power ladder.
//
// Table entries are specified as integers scaled by a power of two (2^15,
// 2^13 or 2^12, chosen so the master values stay exactly representable); the
// division happens once when the package initializes.
package tables
