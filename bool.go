package iniconf

import (
	"fmt"
	"strings"
)

// implicitValue is what a bool variable without a value is set from.
const implicitValue = "true"

type gbool bool

var gboolValues = map[string]gbool{
	"true": true, "yes": true, "on": true, "1": true,
	"false": false, "no": false, "off": false, "0": false}

func (b *gbool) UnmarshalText(text []byte) error {
	s := string(text)
	v, ok := gboolValues[strings.ToLower(s)]
	if !ok {
		return fmt.Errorf("failed to parse %#q as bool", s)
	}
	*b = v
	return nil
}
