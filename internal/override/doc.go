// Package override applies field-level changes to an evaluated descriptor.
//
// Overrides are written in HCL. Each `override "<variable>"` block either
// replaces the variable (`set`) or appends to it as a list (`append`).
// Expressions can refer to the descriptor being changed through the `pkg`
// object and to the staged patch through `patch.name`:
//
//	override "_archive" {
//	  set = "hyprland-${pkg.pkgver}"
//	}
//
//	override "b2sums" {
//	  append          = ["SKIP"]
//	  only_if_defined = true
//	}
//
// Blocks apply in file order, and each one sees the result of the ones
// before it. The set shipped with the binary lives in overrides.hcl.
package override
