package analyze

import (
	"go/token"

	"enumlabel-generator/internal/common"
	"enumlabel-generator/options"
)

// TypeID uniquely identifies a type by its package path and name.
type TypeID struct {
	PkgPath string // e.g., "enumlabel-generator/examples/payment"
	Name    string // e.g., "PaymentMethodIgnore"
}

// String returns a human-readable representation of the TypeID.
func (t TypeID) String() string {
	if t.PkgPath == "" {
		return t.Name
	}

	return t.PkgPath + "." + t.Name
}

// Short returns the type qualified by the package alias, e.g. "payment.PaymentMethodIgnore".
func (t TypeID) Short() string {
	if alias := common.PkgAlias(t.PkgPath); alias != "" {
		return alias + "." + t.Name
	}

	return t.Name
}

// LabelState is the raw declared-label state of a member.
type LabelState int

const (
	LabelAbsent  LabelState = iota // no label directive
	LabelEmpty                     // label directive without an argument
	LabelPresent                   // label directive with a value (possibly "")
)

// String returns a human-readable representation of the LabelState.
func (s LabelState) String() string {
	switch s {
	case LabelAbsent:
		return "absent"
	case LabelEmpty:
		return "empty"
	case LabelPresent:
		return "present"
	default:
		return common.UnknownStr
	}
}

// DeclaredLabel is a member's label as written in source.
type DeclaredLabel struct {
	State LabelState
	Value string
}

// Absent returns the label of a member without a label directive.
func Absent() DeclaredLabel { return DeclaredLabel{State: LabelAbsent} }

// Empty returns the label of a member whose directive has no argument.
func Empty() DeclaredLabel { return DeclaredLabel{State: LabelEmpty} }

// Present returns a declared label value.
func Present(v string) DeclaredLabel { return DeclaredLabel{State: LabelPresent, Value: v} }

// MemberInfo describes one enum constant.
type MemberInfo struct {
	Name  string        // constant name
	Label DeclaredLabel // declared label
	// ConstValue is the exact constant value, used to detect aliases.
	ConstValue string
	Pos        token.Position
}

// EnumInfo describes an enum type selected for generation.
type EnumInfo struct {
	ID      TypeID
	PkgName string // package name as declared
	Dir     string // directory of the package sources
	// Underlying is the underlying basic type, e.g. "int" or "string".
	Underlying string
	// HasDirective is true if the type carries an //enumlabel:generate directive.
	HasDirective bool
	// PolicyArg is the raw policy argument of the directive.
	PolicyArg string
	// Policy is the parsed policy; zero when PolicyArg is missing or malformed.
	Policy options.PolicyEnum
	// Skip excludes the enum from generation.
	Skip    bool
	Members []MemberInfo
	// Scope lists the names declared at package scope. Generated code must
	// not shadow them.
	Scope []string
	Pos   token.Position
}

// Member returns the member with the given name.
func (e *EnumInfo) Member(name string) (*MemberInfo, bool) {
	for i := range e.Members {
		if e.Members[i].Name == name {
			return &e.Members[i], true
		}
	}

	return nil, false
}

// PackageInfo holds information about a loaded package.
type PackageInfo struct {
	Path  string   // Import path
	Name  string   // Package name
	Dir   string   // Source directory
	Enums []TypeID // Enum types found in this package
}

// EnumGraph holds all enums found in loaded packages.
type EnumGraph struct {
	// Enums maps TypeID to every named integer or string type with constants,
	// annotated or not, so that configuration can select unannotated ones.
	Enums map[TypeID]*EnumInfo
	// Packages maps package paths to their package info.
	Packages map[string]*PackageInfo
}

// NewEnumGraph creates a new empty EnumGraph.
func NewEnumGraph() *EnumGraph {
	return &EnumGraph{
		Enums:    make(map[TypeID]*EnumInfo),
		Packages: make(map[string]*PackageInfo),
	}
}

// GetEnum returns the EnumInfo for a given TypeID, or nil if not found.
func (g *EnumGraph) GetEnum(id TypeID) *EnumInfo {
	return g.Enums[id]
}

// Selected returns the enums that carry a directive or were enabled by
// configuration, in no particular order.
func (g *EnumGraph) Selected() []*EnumInfo {
	var out []*EnumInfo

	for _, e := range g.Enums {
		if e.HasDirective || e.Policy.IsValid() {
			out = append(out, e)
		}
	}

	return out
}
