package iniconf

import (
	"encoding"
	"errors"
	"fmt"
	"io"
	"math"
	"net/netip"
	"reflect"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"gopkg.in/warnings.v0"

	"github.com/go-gcfg/iniconf/print"
	"github.com/go-gcfg/iniconf/scan"
)

type tag struct {
	ident string
}

func newTag(t string) tag {
	idx := strings.IndexRune(t, ',')
	if idx < 0 {
		idx = len(t)
	}
	return tag{ident: t[:idx]}
}

func fieldFold(v reflect.Value, name string) reflect.Value {
	var n string
	r0, _ := utf8.DecodeRuneInString(name)
	if unicode.IsLetter(r0) && !unicode.IsLower(r0) && !unicode.IsUpper(r0) {
		n = "X"
	}
	n += strings.ReplaceAll(name, "-", "_")
	return v.FieldByNameFunc(func(fieldName string) bool {
		if !v.FieldByName(fieldName).CanSet() {
			return false
		}
		f, _ := v.Type().FieldByName(fieldName)
		t := newTag(f.Tag.Get("gcfg"))
		if t.ident != "" {
			return strings.EqualFold(t.ident, name)
		}
		return strings.EqualFold(n, fieldName)
	})
}

type setter func(destp any, val string) error

var errUnsupportedType = errors.New("unsupported type")

var setters = []setter{
	typeSetter, textUnmarshalerSetter, kindSetter, scanSetter,
}

func textUnmarshalerSetter(d any, val string) error {
	dtu, ok := d.(encoding.TextUnmarshaler)
	if !ok {
		return errUnsupportedType
	}
	return dtu.UnmarshalText([]byte(val))
}

func boolSetter(d any, val string) error {
	if val == "" {
		// a bare name turns a flag on
		val = implicitValue
	}
	var b gbool
	if err := b.UnmarshalText([]byte(val)); err != nil {
		return err
	}
	reflect.ValueOf(d).Elem().SetBool(bool(b))
	return nil
}

// scanAll runs a scanner and reports whether it consumed all of val.
func scanAll(val string, n int) bool {
	return n > 0 && n == len(val)
}

func hexPrefix(val string) (string, bool) {
	if len(val) > 2 && val[0] == '0' && (val[1] == 'x' || val[1] == 'X') {
		return val[2:], true
	}
	return val, false
}

// fits64 reports whether digits, scanned into u, did not wrap around:
// rendering u again must give back digits less their leading zeros.
func fits64(digits string, u uint64, hex bool) bool {
	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		return u == 0
	}
	var b [20]byte
	var n int
	if hex {
		n = print.Hex(b[:], u)
	} else {
		n = print.Uint(b[:], u)
	}
	return strings.EqualFold(digits, string(b[:n]))
}

// scanMagnitude scans the unsigned part of an integer value, decimal or
// hexadecimal with a 0x prefix. ok is false if val is not a number;
// inRange is false if it does not fit in 64 bits.
func scanMagnitude(val string) (u uint64, ok, inRange bool) {
	digits, hex := hexPrefix(val)
	var n int
	if hex {
		n = scan.Hex(digits, &u)
	} else {
		n = scan.Ulong(digits, &u)
	}
	if !scanAll(digits, n) {
		return 0, false, false
	}
	return u, true, fits64(digits, u, hex)
}

// intSetter parses decimal, or hexadecimal with a 0x prefix. Signed types
// take a leading sign. A leading zero does not mean octal.
func intSetter(d any, val string) error {
	v := reflect.ValueOf(d).Elem()
	t := v.Type()
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		mag, neg := val, false
		if mag != "" && (mag[0] == '-' || mag[0] == '+') {
			mag, neg = mag[1:], mag[0] == '-'
		}
		u, ok, inRange := scanMagnitude(mag)
		if !ok {
			return fmt.Errorf("failed to parse %q as %v", val, t)
		}
		limit := uint64(math.MaxInt64)
		if neg {
			limit++
		}
		if !inRange || u > limit {
			return fmt.Errorf("failed to parse %q as %v: value out of range", val, t)
		}
		i := int64(u)
		if neg {
			i = -i
		}
		if v.OverflowInt(i) {
			return fmt.Errorf("failed to parse %q as %v: value out of range", val, t)
		}
		v.SetInt(i)
	default:
		u, ok, inRange := scanMagnitude(val)
		if !ok {
			return fmt.Errorf("failed to parse %q as %v", val, t)
		}
		if !inRange || v.OverflowUint(u) {
			return fmt.Errorf("failed to parse %q as %v: value out of range", val, t)
		}
		v.SetUint(u)
	}
	return nil
}

// timeSetter accepts "2006-01-02", optionally followed by blanks or 'T'
// and "15:04[:05]", in UTC. Anything else is left to UnmarshalText.
func timeSetter(d any, val string) error {
	var st scan.Stamp
	n := scan.Date(val, &st)
	if n == 0 {
		return errUnsupportedType
	}
	if n < len(val) {
		sep := scan.Blank(val[n:])
		if sep == 0 && val[n] == 'T' {
			sep = 1
		}
		m := scan.Time(val[n+sep:], &st)
		if sep == 0 || m == 0 {
			return errUnsupportedType
		}
		n += sep + m
	}
	if n != len(val) {
		return errUnsupportedType
	}
	*d.(*time.Time) = st.Time(time.UTC)
	return nil
}

// addrSetter takes dotted IPv4 addresses; other forms go to UnmarshalText.
func addrSetter(d any, val string) error {
	var ip [4]byte
	if !scanAll(val, scan.IP4(val, &ip)) {
		return errUnsupportedType
	}
	*d.(*netip.Addr) = netip.AddrFrom4(ip)
	return nil
}

func addrPortSetter(d any, val string) error {
	var ip [4]byte
	var port uint16
	n := scan.IP4Port(val, &ip, &port)
	// an address alone is not an AddrPort
	if !scanAll(val, n) || n == scan.IP4(val, nil) {
		return errUnsupportedType
	}
	*d.(*netip.AddrPort) = netip.AddrPortFrom(netip.AddrFrom4(ip), port)
	return nil
}

func stringSetter(d any, val string) error {
	dsp, ok := d.(*string)
	if !ok {
		return errUnsupportedType
	}
	*dsp = val
	return nil
}

var kindSetters = map[reflect.Kind]setter{
	reflect.String: stringSetter,
	reflect.Bool:   boolSetter,
}

var typeSetters = map[reflect.Type]setter{
	reflect.TypeOf(int(0)):           intSetter,
	reflect.TypeOf(int8(0)):          intSetter,
	reflect.TypeOf(int16(0)):         intSetter,
	reflect.TypeOf(int32(0)):         intSetter,
	reflect.TypeOf(int64(0)):         intSetter,
	reflect.TypeOf(uint(0)):          intSetter,
	reflect.TypeOf(uint8(0)):         intSetter,
	reflect.TypeOf(uint16(0)):        intSetter,
	reflect.TypeOf(uint32(0)):        intSetter,
	reflect.TypeOf(uint64(0)):        intSetter,
	reflect.TypeOf(time.Time{}):      timeSetter,
	reflect.TypeOf(netip.Addr{}):     addrSetter,
	reflect.TypeOf(netip.AddrPort{}): addrPortSetter,
}

func typeSetter(d any, val string) error {
	t := reflect.ValueOf(d).Elem().Type()
	setter, ok := typeSetters[t]
	if !ok {
		return errUnsupportedType
	}
	return setter(d, val)
}

func kindSetter(d any, val string) error {
	k := reflect.ValueOf(d).Elem().Kind()
	setter, ok := kindSetters[k]
	if !ok {
		return errUnsupportedType
	}
	return setter(d, val)
}

func scanSetter(d any, val string) error {
	t := reflect.ValueOf(d).Elem().Type()
	// attempt to read an extra rune to make sure the value is consumed
	var r rune
	n, err := fmt.Sscanf(val, "%v%c", d, &r)
	switch {
	case n < 1 || n == 1 && err != io.EOF:
		return fmt.Errorf("failed to parse %q as %v: %v", val, t, err)
	case n > 1:
		return fmt.Errorf("failed to parse %q as %v: extra characters", val, t)
	}
	// n == 1 && err == io.EOF
	return nil
}

// sectionValue finds or allocates the struct (or string map) that holds
// the variables of a section.
func sectionValue(c *warnings.Collector, vCfg reflect.Value, sect, sub string) (reflect.Value, error) {
	if sect == "" {
		return vCfg, nil
	}
	vSect := fieldFold(vCfg, sect)
	if !vSect.IsValid() {
		return reflect.Value{}, c.Collect(extraData{section: sect})
	}
	switch vSect.Kind() {
	case reflect.Map:
		vst := vSect.Type()
		if vst.Key().Kind() != reflect.String {
			panic(fmt.Errorf("map field for section must have string keys: section %q", sect))
		}
		if vSect.IsNil() {
			vSect.Set(reflect.MakeMap(vst))
		}
		if vst.Elem().Kind() == reflect.String {
			// free-form section; subsections are not allowed
			if sub != "" {
				return reflect.Value{}, c.Collect(extraData{section: sect, subsection: &sub})
			}
			return vSect, nil
		}
		if vst.Elem().Kind() != reflect.Ptr || vst.Elem().Elem().Kind() != reflect.Struct {
			panic(fmt.Errorf("map field for section must have string or "+
				"pointer-to-struct values: section %q", sect))
		}
		k := reflect.ValueOf(sub)
		pv := vSect.MapIndex(k)
		if !pv.IsValid() {
			pv = reflect.New(vst.Elem().Elem())
			vSect.SetMapIndex(k, pv)
		}
		return pv.Elem(), nil
	case reflect.Ptr:
		if vSect.Type().Elem().Kind() != reflect.Struct {
			panic(fmt.Errorf("pointer field for section must point to a struct: section %q", sect))
		}
		if vSect.IsNil() {
			vSect.Set(reflect.New(vSect.Type().Elem()))
		}
		vSect = vSect.Elem()
	case reflect.Struct:
	default:
		panic(fmt.Errorf("field for section must be a map, a struct or a "+
			"pointer to a struct: section %q", sect))
	}
	if sub != "" {
		return reflect.Value{}, c.Collect(extraData{section: sect, subsection: &sub})
	}
	return vSect, nil
}

func setVariable(c *warnings.Collector, vSect reflect.Value, sect, sub, name, value string) error {
	if vSect.Kind() == reflect.Map {
		vSect.SetMapIndex(reflect.ValueOf(name), reflect.ValueOf(value))
		return nil
	}
	vName := fieldFold(vSect, name)
	if !vName.IsValid() {
		var subp *string
		if sub != "" {
			subp = &sub
		}
		return c.Collect(extraData{section: sect, subsection: subp, variable: &name})
	}
	var vAddr reflect.Value
	// multi-value if unnamed slice type
	isMulti := vName.Type().Name() == "" && vName.Kind() == reflect.Slice
	if isMulti {
		// create new value and append to slice later
		vAddr = reflect.New(vName.Type().Elem())
	} else {
		vAddr = vName.Addr()
	}
	vAddrI := vAddr.Interface()
	ok, err := false, error(nil)
	for _, s := range setters {
		err = s(vAddrI, value)
		if err == nil {
			ok = true
			break
		}
		if err != errUnsupportedType {
			return err
		}
	}
	if !ok {
		// in case all setters returned errUnsupportedType
		return err
	}
	if isMulti {
		vName.Set(reflect.Append(vName, vAddr.Elem()))
	}
	return nil
}
