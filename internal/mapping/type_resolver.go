package mapping

import (
	"strings"

	"enumlabel-generator/internal/analyze"
)

// ResolveEnum resolves a type ID string like:
// - "payment.Method" (short)
// - "enumlabel-generator/examples/payment.Method" (full)
// - "Method" (name only).
//
// Short and name-only forms must identify exactly one enum; the second return
// value reports how many enums matched.
func ResolveEnum(typeIDStr string, graph *analyze.EnumGraph) (*analyze.EnumInfo, int) {
	if graph == nil || typeIDStr == "" {
		return nil, 0
	}

	pkgStr, name := "", typeIDStr
	if lastDot := strings.LastIndex(typeIDStr, "."); lastDot >= 0 {
		pkgStr, name = typeIDStr[:lastDot], typeIDStr[lastDot+1:]
		if pkgStr == "" || name == "" {
			return nil, 0
		}

		// exact match (for fully qualified import path)
		if e := graph.GetEnum(analyze.TypeID{PkgPath: pkgStr, Name: name}); e != nil {
			return e, 1
		}
	}

	var matches []*analyze.EnumInfo

	for id, e := range graph.Enums {
		if id.Name != name {
			continue
		}

		if pkgStr == "" || strings.HasSuffix(id.PkgPath, "/"+pkgStr) {
			matches = append(matches, e)
		}
	}

	if len(matches) != 1 {
		return nil, len(matches)
	}

	return matches[0], 1
}
