// Package assembler derives a customised build descriptor from an upstream
// recipe directory. Run stages a copy of the recipe next to the patch,
// evaluates the upstream descriptor, applies the override set, appends a
// patch step to prepare() and writes the regenerated descriptor.
//
// A run always starts by deleting the output directory, so a failed run is
// repaired by running again. Two runs must not share an output directory at
// the same time.
package assembler
