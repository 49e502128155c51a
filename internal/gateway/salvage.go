package gateway

import (
	"bytes"
	"encoding/json"
)

// salvage returns the first balanced span of raw that opens with open
// ('{' or '[') and is valid JSON. Brackets inside string literals are
// ignored. It returns nil when no such span exists.
func salvage(raw []byte, open byte) []byte {
	for start := bytes.IndexByte(raw, open); start >= 0; {
		if end := balancedEnd(raw, start); end > start {
			span := raw[start : end+1]
			if json.Valid(span) {
				return span
			}
		}
		next := bytes.IndexByte(raw[start+1:], open)
		if next < 0 {
			break
		}
		start += next + 1
	}
	return nil
}

// balancedEnd scans from raw[start] (an opening bracket) and returns the
// index of the bracket that closes it, or -1 if the span never balances or
// closes with the wrong bracket.
func balancedEnd(raw []byte, start int) int {
	stack := make([]byte, 0, 16)
	inString := false
	escaped := false

	for i := start; i < len(raw); i++ {
		c := raw[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}

		switch c {
		case '"':
			inString = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return -1
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i
			}
		}
	}
	return -1
}

// unwrapArray accepts an object holding exactly one array-valued field and
// returns that array. Native JSON-object modes wrap arrays this way.
func unwrapArray(obj []byte) []byte {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(obj, &fields); err != nil {
		return nil
	}
	var found []byte
	for _, v := range fields {
		v = bytes.TrimSpace(v)
		if len(v) > 0 && v[0] == '[' {
			if found != nil {
				return nil
			}
			found = v
		}
	}
	return found
}

// firstByte returns the first non-space byte of b, or 0.
func firstByte(b []byte) byte {
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return 0
	}
	return b[0]
}
