// Package modkit assembles service modules: build options, shared deps and the
// Module contract they satisfy.
package modkit

import "screenwatch/internal/modkit/module"

// Module is re-exported so service packages need a single import
type Module = module.Module
