// Package half carries the significance convention for IEEE-754
// binary16 values.
//
// Go has no native 16 bit float, so the encoded representation is the
// bit-pattern type Num and the surrounding quantities (input values,
// uncertainties, bounds, decimally rounded values) travel as float32,
// which represents every binary16 value exactly, subnormals included.
//
// The operation set and its contracts match the generic functions of
// the parent package, with the binary16 layout constants: nmant 10,
// smallest normal 2^-14, unit round-off 2^-10.
package half
