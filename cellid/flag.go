package cellid

import "github.com/spf13/pflag"

// ParseFlag parses a command line or config value holding a token. Unlike
// FromToken it only accepts tokens of valid cells.
func ParseFlag(s string) (CellID, error) {
	id := FromToken(s)
	if !id.IsValid() {
		return None(), &ParseError{Input: s, cause: ErrInvalidToken}
	}
	return id, nil
}

// UnparseFlag is the inverse of ParseFlag.
func UnparseFlag(id CellID) string { return id.ToToken() }

type flagValue struct {
	p *CellID
}

var _ pflag.Value = (*flagValue)(nil)

// NewFlag returns a pflag.Value storing into p. The flag's text form is the
// token.
//
//	var origin cellid.CellID
//	fs.Var(cellid.NewFlag(&origin), "origin", "cell token")
func NewFlag(p *CellID) pflag.Value { return &flagValue{p: p} }

func (f *flagValue) Set(s string) error {
	id, err := ParseFlag(s)
	if err != nil {
		return err
	}
	*f.p = id
	return nil
}

func (f *flagValue) String() string {
	if f.p == nil || *f.p == 0 {
		return ""
	}
	return UnparseFlag(*f.p)
}

func (f *flagValue) Type() string { return "cellid" }
