package schema

import (
	"reflect"
	"strings"
)

// DescribeStruct renders a pseudo-JSON description of a struct type for
// embedding in a model instruction: field names in declaration order,
// value types, numeric bounds and enumerations taken from the same
// validate tags the validator enforces. Output is deterministic.
func DescribeStruct(t reflect.Type) string {
	var b strings.Builder
	writeStruct(&b, t, 0)
	return b.String()
}

type rules struct {
	required bool
	min      string
	max      string
	oneOf    []string
}

func parseRules(tag string) rules {
	var r rules
	for _, part := range strings.Split(tag, ",") {
		switch {
		case part == "required":
			r.required = true
		case strings.HasPrefix(part, "min="):
			r.min = strings.TrimPrefix(part, "min=")
		case strings.HasPrefix(part, "max="):
			r.max = strings.TrimPrefix(part, "max=")
		case strings.HasPrefix(part, "oneof="):
			r.oneOf = splitOneOf(strings.TrimPrefix(part, "oneof="))
		}
	}
	return r
}

func writeStruct(b *strings.Builder, t reflect.Type, indent int) {
	pad := strings.Repeat("  ", indent+1)
	b.WriteString("{\n")

	var fields []reflect.StructField
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if jsonName(f) == "" {
			continue
		}
		fields = append(fields, f)
	}

	for i, f := range fields {
		b.WriteString(pad)
		b.WriteString(`"` + jsonName(f) + `": `)
		writeFieldType(b, f.Type, parseRules(f.Tag.Get("validate")), indent+1)
		if i < len(fields)-1 {
			b.WriteString(",")
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("  ", indent))
	b.WriteString("}")
}

func writeFieldType(b *strings.Builder, t reflect.Type, r rules, indent int) {
	optional := !r.required
	isPtr := t.Kind() == reflect.Ptr
	if isPtr {
		t = t.Elem()
	}

	if len(r.oneOf) > 0 {
		alts := make([]string, 0, len(r.oneOf))
		for _, v := range r.oneOf {
			alts = append(alts, `"`+v+`"`)
		}
		b.WriteString(strings.Join(alts, "|"))
		return
	}

	switch t.Kind() {
	case reflect.String:
		b.WriteString("string")
		if optional {
			b.WriteString("|null")
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		b.WriteString("integer")
		if r.min != "" && r.max != "" {
			b.WriteString(" (" + r.min + "-" + r.max + ")")
		}
	case reflect.Slice:
		writeSlice(b, t.Elem(), r, indent)
	case reflect.Struct:
		writeStruct(b, t, indent)
		// Only pointer-typed nested structs are omittable.
		if isPtr && optional {
			b.WriteString("|null")
		}
	default:
		b.WriteString(t.Kind().String())
	}
}

func writeSlice(b *strings.Builder, elem reflect.Type, r rules, indent int) {
	pad := strings.Repeat("  ", indent+1)

	if elem.Kind() == reflect.Struct {
		b.WriteString("[\n")
		b.WriteString(pad)
		writeStruct(b, elem, indent+1)
		b.WriteString(",\n")
		b.WriteString(pad)
		b.WriteString("...\n")
		b.WriteString(strings.Repeat("  ", indent))
		b.WriteString("]")
		return
	}

	b.WriteString("[")
	writeFieldType(b, elem, rules{required: true}, indent)
	b.WriteString(", ...]")
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return f.Name
	}
	return name
}
