package render

import "strings"

// Entity replacements for text content and for attribute values. Attribute
// values additionally encode the whitespace characters that would survive a
// round trip through an attribute parser in mangled form.
var (
	textEntities = map[byte]string{
		'&':  "&amp;",
		'<':  "&lt;",
		'>':  "&gt;",
		'"':  "&quot;",
		'\'': "&#39;",
	}
	attrEntities = map[byte]string{
		'&':  "&amp;",
		'<':  "&lt;",
		'>':  "&gt;",
		'"':  "&quot;",
		'\'': "&#39;",
		'\n': "&#10;",
		'\r': "&#13;",
		'\t': "&#9;",
	}
)

// escapeHTML escapes s for use as element text content.
func escapeHTML(s string) string {
	return escape(s, textEntities)
}

// escapeAttr escapes s for use inside a double-quoted attribute value.
func escapeAttr(s string) string {
	return escape(s, attrEntities)
}

// escape replaces every byte present in entities, copying clean runs
// through untouched. A string with nothing to replace is returned as-is.
// Byte-wise scanning is safe here: every entity byte is ASCII, and UTF-8
// continuation bytes never collide with ASCII.
func escape(s string, entities map[byte]string) string {
	var b strings.Builder
	last := 0
	for i := 0; i < len(s); i++ {
		ent, ok := entities[s[i]]
		if !ok {
			continue
		}
		if b.Len() == 0 {
			b.Grow(len(s) + 16)
		}
		b.WriteString(s[last:i])
		b.WriteString(ent)
		last = i + 1
	}
	if last == 0 {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}
