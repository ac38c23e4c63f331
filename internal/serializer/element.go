// Package serializer renders catalog records into the tagged documents the game
// client reads. Element order is part of the wire contract.
package serializer

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"
)

type Attr struct {
	Key   string
	Value string
}

// StringElement renders <key>value</key>. Text values are escaped; numbers and
// booleans use their shortest decimal and lowercase forms.
func StringElement(key string, value any) string {
	return RawElement(key, formatValue(value))
}

// RawElement wraps content that is already serialized.
func RawElement(key string, inner string) string {
	return "<" + key + ">" + inner + "</" + key + ">"
}

// TaggedStringElement renders an element carrying attributes around already
// serialized content.
func TaggedStringElement(key string, inner string, attrs ...Attr) string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(key)
	for _, attr := range attrs {
		b.WriteString(" ")
		b.WriteString(attr.Key)
		b.WriteString(`="`)
		b.WriteString(escape(attr.Value))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	b.WriteString(inner)
	b.WriteString("</")
	b.WriteString(key)
	b.WriteString(">")
	return b.String()
}

func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return escape(v)
	case bool:
		return strconv.FormatBool(v)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return escape(fmt.Sprint(v))
	}
}

func escape(s string) string {
	var b strings.Builder
	if err := xml.EscapeText(&b, []byte(s)); err != nil {
		return s
	}
	return b.String()
}
