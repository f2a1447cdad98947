// Package bean discovers and caches per-type metadata of struct beans.
//
// A bean is a pointer to a struct. Its Descriptor lists:
//   - properties: exported fields and getter/setter method pairs, named by
//     the `bean` struct tag or the decapitalized Go name;
//   - attributes: every visible struct field, unexported and promoted ones included;
//   - initializers: the implicit zero-value initializer followed by the
//     constructor functions registered with WithInitializers;
//   - methods: the exported method set of *T, grouped by name.
//
// Getters are GetX, IsX (bool results) and plain X methods; a plain X()
// only counts when the struct has an unexported field x or a SetX method.
// Setters are SetX(v), optionally returning an error. Method accessors take
// precedence over an exported field of the same property name.
//
// Descriptors are built once per Registry and type, published without a
// global lock and never mutated afterwards. A Registry created with
// WithTypeSource attaches declared generic information to attributes and
// properties.
package bean
