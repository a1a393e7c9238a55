// Package interleave spreads and collects bits at a fixed stride, and merges or separates
// two or three component values into one packed code.
//
// Bit numbering starts at the least significant bit. A 2-way code of width W holds x in bits
// 0, 2, 4, ... and y in bits 1, 3, 5, ...; each component can hold W/2 bits. A 3-way code holds
// x in bits 0, 3, 6, ..., y in 1, 4, 7, ... and z in 2, 5, 8, ...
//
// Inputs must not have bits set outside their component capacity. The functions do not check
// this: a violated precondition gives a deterministic but unspecified result. The predicates in
// check.go can be used to assert preconditions while debugging.
//
// Merge and Separate widen the operand and run a single scatter or gather at twice the width.
// MergeNWE and SeparateNWE ("no width expansion") never use a value wider than their operands and
// run two narrow passes instead. Both flavors return identical results. The 64 bit functions have
// no wider type to expand into and always use the narrow algorithm.
package interleave
