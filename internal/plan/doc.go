// Package plan builds the bidirectional label tables consumed by code generation.
//
// Resolution pipeline, per enum:
//  1. For each member, in declaration order, resolve the forward fact
//     (member -> label) and the reverse fact (label -> member) from the
//     member's declared label and the enum's absence policy.
//  2. Feed both facts into one Builder per direction. Builders collapse
//     duplicate keys into a collision marker and keep the first default.
//  3. Collect the distinct declared labels in declaration order.
//
// Compilation never fails. Missing labels, ambiguous labels and unmatched
// input are encoded as Fail values and only surface when generated code
// performs the corresponding lookup.
package plan
