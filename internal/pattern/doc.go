// Package pattern decodes strings into structs through named-group regular
// expressions. Each named capture is assigned to the struct field tagged
// `pattern:"<group>"`, converting text to the field's type.
package pattern
