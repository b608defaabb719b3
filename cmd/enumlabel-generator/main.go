// Package main provides the CLI entrypoint for enumlabel-generator.
//
// enumlabel-generator is a stringer-like Go codegen tool that:
//   - Parses Go packages (AST + go/types) to find enums annotated with //enumlabel:generate
//   - Reads per-member //enumlabel:label directives
//   - Compiles forward (member to label) and reverse (label to member) tables
//   - Generates a <type>_label.go file next to each enum
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"enumlabel-generator/internal/clierr"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := NewRootCmd().ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(clierr.ExitCodeOf(err))
	}
}
