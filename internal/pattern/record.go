package pattern

import "fmt"

// RecordPattern is the layout of a Record: digits, a boolean and a token
// separated by whitespace.
const RecordPattern = `^\s*(?P<number>\d+)\s+(?P<flag>true|false)\s+(?P<token>\S+)\s*$`

// Record is the structured form of a line such as "1 true hello".
type Record struct {
	Number uint64 `pattern:"number" yaml:"number"`
	Flag   bool   `pattern:"flag" yaml:"flag"`
	Token  string `pattern:"token" yaml:"token"`
}

var recordDecoder = MustCompile[Record](RecordPattern)

// ParseRecord decodes s into a Record.
func ParseRecord(s string) (Record, error) {
	return recordDecoder.Decode(s)
}

// RecordFields names the captured fields of RecordPattern, in order.
func RecordFields() []string {
	return recordDecoder.Groups()
}

// MustParseRecord decodes s into a Record and panics if s is malformed.
func MustParseRecord(s string) Record {
	return recordDecoder.MustDecode(s)
}

// String renders the fields as "number, flag, token".
func (r Record) String() string {
	return fmt.Sprintf("%d, %t, %s", r.Number, r.Flag, r.Token)
}
