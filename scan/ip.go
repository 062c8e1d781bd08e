package scan

// IP4 scans an IPv4 address in dotted decimal notation, like 192.168.1.2.
// Each of the four octets must be in 0..255.
func IP4(s string, ip *[4]byte) int {
	var addr [4]byte
	i := 0
	for k := range addr {
		if k > 0 {
			if i == len(s) || s[i] != '.' {
				return 0
			}
			i++
		}
		var u uint
		n := Uint(s[i:], &u)
		if n == 0 || u > 255 {
			return 0
		}
		addr[k] = byte(u)
		i += n
	}
	if ip != nil {
		*ip = addr
	}
	return i
}

// IP4Port scans an IPv4 address optionally followed by a port, as in
// "10.1.2.3:4321", "10.1.2.3%4321" or "10.1.2.3 4321". Blanks may surround
// the separator. Once a ':' or '%' separator is seen a port in 0..65535 is
// required; without a port, *port is set to 0.
//
// If port is nil only the address is scanned.
func IP4Port(s string, ip *[4]byte, port *uint16) int {
	var addr [4]byte
	i := IP4(s, &addr)
	if i == 0 {
		return 0
	}
	var p uint16
	if port != nil {
		i += Blank(s[i:])
		sep := i < len(s) && (s[i] == ':' || s[i] == '%')
		if sep {
			i++
		}
		i += Blank(s[i:])
		var u uint
		if n := Uint(s[i:], &u); n > 0 {
			if u > 65535 {
				return 0
			}
			p = uint16(u)
			i += n
		} else if sep {
			return 0
		}
		*port = p
	}
	if ip != nil {
		*ip = addr
	}
	return i
}
