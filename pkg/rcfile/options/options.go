// Package options is the catalog of configuration options the checker
// understands: for each key, its canonical section, value kind, default,
// and deprecation state. The catalog drives settings resolution,
// configuration health checks, and the generated option reference.
package options

// Kind classifies how an option's raw value is interpreted.
type Kind int

const (
	KindString Kind = iota
	KindInt
	KindBool
	KindRegexp
	KindRegexpList
	KindSymbolList
	KindNameList
	KindChoice
)

// String returns the kind name used in rendered output.
func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInt:
		return "int"
	case KindBool:
		return "bool"
	case KindRegexp:
		return "regexp"
	case KindRegexpList:
		return "regexp-list"
	case KindSymbolList:
		return "symbol-list"
	case KindNameList:
		return "name-list"
	case KindChoice:
		return "choice"
	default:
		return "unknown"
	}
}

// IsList reports whether values of this kind are comma-separated lists.
func (k Kind) IsList() bool {
	switch k {
	case KindRegexpList, KindSymbolList, KindNameList:
		return true
	}
	return false
}

// Option describes a single configuration option.
type Option struct {
	// Key is the option name as written in a configuration file,
	// e.g. "max-line-length".
	Key string `json:"key"`

	// Section is the canonical section the option belongs to,
	// e.g. "FORMAT". Consumers read options wherever they appear,
	// so this is a convention, not a requirement.
	Section string `json:"section"`

	// Kind classifies the value syntax.
	Kind Kind `json:"kind"`

	// Default is the value used when the option is absent, in the
	// same textual form a configuration file would carry.
	Default string `json:"default,omitempty"`

	// Choices lists the accepted values for KindChoice options.
	Choices []string `json:"choices,omitempty"`

	// Description is the option's help text.
	Description string `json:"description"`

	// Deprecated marks options kept only for backward compatibility.
	Deprecated bool `json:"deprecated,omitempty"`

	// ReplacedBy names the successor of a deprecated option.
	ReplacedBy string `json:"replaced_by,omitempty"`
}
