// Package layout describes the IEEE-754 binary interchange layouts the
// significance convention operates on.
//
// A binary floating point value of width w is laid out as a sign bit,
// a biased exponent, and an explicit significand (the leading 1 bit of
// a normal value is implicit and not stored):
//
//  | s | e ....... e | m ............. m |
//  |---|-------------|-------------------|
//  | 1 | w-nmant-1   | nmant             |
//
// The supported layouts form a closed table:
//
//  | Layout | Width | Nmant | MinExp | MaxExp | Tiny    | Eps   |
//  |--------|-------|-------|--------|--------|---------|-------|
//  | Half   | 16    | 10    | -14    | 16     | 2^-14   | 2^-10 |
//  | Single | 32    | 23    | -126   | 128    | 2^-126  | 2^-23 |
//  | Double | 64    | 52    | -1022  | 1024   | 2^-1022 | 2^-52 |
//  |--------|-------|-------|--------|--------|---------|-------|
//
// MinExp and MaxExp bound the exponent of normal values: a normal
// value v satisfies 2^(MinExp) <= |v| < 2^(MaxExp). A biased exponent
// field of all zeros (zero and subnormal values) decomposes to the
// exponent MinExp-1, which Subnormal reports.
//
// Decompose reinterprets a value's bit pattern as an unsigned integer
// of equal width and splits it into its three fields. It is the single
// auditable bit-reinterpretation point of the module; callers obtain
// the pattern with math.Float32bits and friends.
package layout
