package chip8

// HostKey identifies a physical key on the host, as the character on its
// keycap. The frontend translates its toolkit's key events into these.
type HostKey rune

// InputSource is the capability Step consumes to answer the two key-test
// instructions and the key-wait instruction. A nil InputSource reads as "no
// key down", never as an error.
type InputSource interface {
	// IsDown reports whether the given host key is currently held.
	IsDown(k HostKey) bool
	// FirstDown returns a host key that is currently held, if any.
	FirstDown() (HostKey, bool)
}

// keymap fixes the bijection between the 16 logical keys and host keys, the
// classic left-hand block layout:
//
//	1 2 3 4        1 2 3 C
//	q w e r   <->  4 5 6 D
//	a s d f        7 8 9 E
//	z x c v        A 0 B F
var keymap = map[byte]HostKey{
	0x1: '1', 0x2: '2', 0x3: '3', 0xC: '4',
	0x4: 'q', 0x5: 'w', 0x6: 'e', 0xD: 'r',
	0x7: 'a', 0x8: 's', 0x9: 'd', 0xE: 'f',
	0xA: 'z', 0x0: 'x', 0xB: 'c', 0xF: 'v',
}

// logicalKey is the reverse lookup: which logical key a host key maps to.
// Host keys outside the pad yield no result.
func logicalKey(k HostKey) (byte, bool) {
	for logical, host := range keymap {
		if host == k {
			return logical, true
		}
	}
	return 0, false
}

// keyDown answers "is logical key k down" through the input capability.
func keyDown(in InputSource, k byte) bool {
	if in == nil {
		return false
	}
	host, ok := keymap[k]
	if !ok {
		return false
	}
	return in.IsDown(host)
}

// pressedKey scans for any held key on the pad and returns its logical code.
// Held keys that are not part of the pad are ignored.
func pressedKey(in InputSource) (byte, bool) {
	if in == nil {
		return 0, false
	}
	host, ok := in.FirstDown()
	if !ok {
		return 0, false
	}
	return logicalKey(host)
}
