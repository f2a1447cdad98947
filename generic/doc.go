// Package generic resolves generic type parameters across embedding chains.
//
// Go has no inheritance, so the supertype chain of a type is the set of
// types it embeds: embedded struct fields for structs, embedded interfaces
// for interfaces. A Binding maps every type parameter reachable through that
// chain to the argument it was instantiated with, and Resolve turns a
// declared type into a recursive ParameterizedType description.
//
// Resolution is static and works on go/types. Types loaded at runtime
// through reflect can be matched back to their declarations with NamedOf
// and a Source, typically one built by the internal analyze loader.
// Runtime instantiations of generic types carry no declaration of their own
// and are therefore never found by a Source.
package generic
