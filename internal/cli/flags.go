package cli

import (
	"fmt"
	"unicode/utf8"

	"github.com/spf13/pflag"
	"github.com/violetpay-org/metastring"
)

// runeValue is a pflag.Value holding exactly one character.
type runeValue struct {
	r rune
}

var _ pflag.Value = (*runeValue)(nil)

func (v *runeValue) String() string {
	if v.r == 0 {
		return ""
	}
	return string(v.r)
}

func (v *runeValue) Set(s string) error {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return fmt.Errorf("expected a single character, got %q", s)
	}
	v.r = r
	return nil
}

func (v *runeValue) Type() string { return "char" }

// encodingValue is a pflag.Value accepting encoding names.
type encodingValue struct {
	enc metastring.Encoding
	set bool
}

var _ pflag.Value = (*encodingValue)(nil)

func (v *encodingValue) String() string {
	if !v.set {
		return ""
	}
	return v.enc.String()
}

func (v *encodingValue) Set(s string) error {
	enc, err := metastring.ParseEncoding(s)
	if err != nil {
		return err
	}
	v.enc, v.set = enc, true
	return nil
}

func (v *encodingValue) Type() string { return "encoding" }

// specialFlags binds --special1 and --special2 to fs.
type specialFlags struct {
	first, second runeValue
}

func (f *specialFlags) register(fs *pflag.FlagSet) {
	fs.Var(&f.first, "special1", "Character at code 62 (default from config, '.')")
	fs.Var(&f.second, "special2", "Character at code 63 (default from config, '_')")
}

// resolve returns the pair to use: flags that were set override cfg.
func (f *specialFlags) resolve(fs *pflag.FlagSet, first, second rune) (rune, rune) {
	if fs.Changed("special1") {
		first = f.first.r
	}
	if fs.Changed("special2") {
		second = f.second.r
	}
	return first, second
}
