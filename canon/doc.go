// Package canon defines the canonical argument structs accepted by native
// graphics backends.
//
// Every struct declares its fields in the exact order the native entry
// points consume them. The order is part of the contract: backends may read
// these structs positionally, so fields must never be reordered, and new
// fields are only ever appended.
//
// Enumerations shared with WebGPU (formats, usages, blend factors, compare
// functions and the like) use the types from github.com/gogpu/gputypes.
// Concepts that have no WebGPU counterpart are declared here.
//
// Nested optional records are pointers; nil means absent. Lists are value
// slices; a nil slice means the caller supplied no list. References to native
// objects created earlier (textures, shaders, render passes) are held as the
// backend's own values, typed as any.
package canon
