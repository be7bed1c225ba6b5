package typesystem

import (
	"strings"

	"golang.org/x/text/encoding/charmap"
)

// compactTable maps wire descriptor characters to catalog types. Several
// types share 'i' on the wire, so the table is not invertible.
var compactTable = map[rune]*Atomic{
	NoDescriptor: Unknown,
	'§':          Long,
	'i':          Int,
	'z':          Char,
	's':          String,
	'1':          Boolean,
	'o':          Item,
	'O':          NamedItem,
	'A':          Anim,
	'S':          Skill,
	't':          Graphic,
	'c':          Location,
	'n':          NpcDef,
	'J':          Struct,
	'g':          Enum,
	'f':          FontMetrics,
	'd':          Sprite,
	'm':          Model,
	'v':          Container,
	'I':          WidgetPtr,
	'x':          Texture,
	'`':          MapID,
	'y':          Category,
	'P':          SoundEffect,
	'Ð':          DbRow,
	'l':          Object,
	'µ':          MapElement,
	'R':          Area,
	'H':          LocShape,
	'u':          NpcUID,
	'L':          OverlayInterface,
	'F':          TopLevelInterface,
}

// DecodeCompact maps a compact descriptor character to its type.
// Characters outside the table are treated as plain ints.
func DecodeCompact(c rune) *Atomic {
	if t, ok := compactTable[c]; ok {
		return t
	}
	return Int
}

// DecodeCompactByte decodes a descriptor as stored in cache metadata,
// where the character is a single Windows-1252 byte.
func DecodeCompactByte(b byte) *Atomic {
	if b == 0 {
		return Unknown
	}
	return DecodeCompact(charmap.Windows1252.DecodeByte(b))
}

// EncodeCompact returns the wire byte for t. Types sharing a character
// (Color, ItemId, Db* and int) all encode to 'i'.
func EncodeCompact(t *Atomic) (byte, bool) {
	if t.desc == NoDescriptor {
		return 0, false
	}
	return charmap.Windows1252.EncodeRune(t.desc)
}

// ToText renders t the way it is displayed: the atomic name, or the
// member names of a composite joined by ", ".
func ToText(t Type) string {
	return t.String()
}

// ParseText resolves a textual descriptor. It accepts atomic display
// names and the bracketed form Name{member, member, ...}, whose name
// prefix is ignored. ok is false when nothing matches.
func ParseText(desc string) (Type, bool) {
	if t, ok := LookupAtomic(desc); ok {
		return t, true
	}
	open := strings.IndexByte(desc, '{')
	if open < 0 {
		return nil, false
	}
	body := strings.TrimSpace(desc[open+1:])
	if !strings.HasSuffix(body, "}") {
		return nil, false
	}
	body = body[:len(body)-1]

	var seq []*Atomic
	for _, member := range splitMembers(body) {
		t, ok := ParseText(strings.TrimSpace(member))
		if !ok {
			return nil, false
		}
		seq = append(seq, t.Flatten()...)
	}
	return Of(seq...), true
}

// splitMembers splits on commas that are not nested inside braces.
func splitMembers(s string) []string {
	var parts []string
	depth, start := 0, 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '{':
			depth++
		case '}':
			depth--
		case ',':
			if depth == 0 {
				parts = append(parts, s[start:i])
				start = i + 1
			}
		}
	}
	return append(parts, s[start:])
}
