// Package analyze provides package loading and labeled-enum extraction.
//
// It uses golang.org/x/tools/go/packages with AST and go/types to find
// named types annotated with an //enumlabel:generate directive and the
// constants declared with that type.
//
// Key types:
//   - TypeID: package import path + type name
//   - EnumInfo: an annotated enum, its policy and ordered members
//   - MemberInfo: member name, declared label, and constant value
package analyze
