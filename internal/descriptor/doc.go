// Package descriptor models a package-build descriptor (a PKGBUILD) as a
// typed Environment of variables and lifecycle functions.
//
// Evaluate reads the declarative subset of shell used by descriptors into an
// Environment. Serialize turns a variable back into an assignment line, and
// ExtractBody / Assemble take function bodies apart and put them back
// together. Statement text inside functions is never interpreted.
package descriptor
