// Package mapping provides the YAML configuration file of the generator:
// schema definitions, parsing, validation against the analyzed enums, and
// application of per-enum overrides.
//
// Directives in source stay the primary way to describe labels. The
// configuration file exists for enums that cannot carry directives (for
// example types owned by another team) and for generator settings.
//
// # Schema Overview
//
//	version: "1"
//	suffix: _label.go
//	runtime_package: enumlabel-generator/pkg/enumlabel
//	workers: 4
//	debug_unformatted: false
//	build_tags: [integration]
//	enums:
//	  - type: payment.Method          # short, full ("enumlabel-generator/examples/payment.Method") or bare name
//	    policy: use-name              # overrides or supplies the directive policy
//	    labels:
//	      Boleto: Boleto bancário     # Present("Boleto bancário")
//	      Debit: ""                   # Present("")
//	      Dinheiro: ~                 # Empty: the member has no label
//	    skip: false                   # exclude from generation
//
// # Precedence
//
// Configuration overrides directives: a policy given here replaces the one
// in the generate directive, and a label given here replaces the member's
// label directive. Giving a policy to an enum without a generate directive
// enables it.
package mapping
