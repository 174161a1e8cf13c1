package atlas

import "strings"
import "strconv"

import "github.com/alecthomas/participle/v2/lexer"

import "github.com/tinne26/texel/esc"
import "github.com/tinne26/texel/internal/tracing"

var overrideLexer = lexer.MustSimple([]lexer.SimpleRule{
	{ Name: "String", Pattern: `"(?:\\.|[^"\\])*"` },
	{ Name: "Comma", Pattern: `,` },
	{ Name: "Whitespace", Pattern: `[ \t\r]+` },
	{ Name: "Bare", Pattern: `(?:\\[^,\s]?|[^,"\s\\])+` },
})

var (
	stringToken = overrideLexer.Symbols()["String"]
	commaToken  = overrideLexer.Symbols()["Comma"]
	bareToken   = overrideLexer.Symbols()["Bare"]
)

const (
	fieldTarget = iota
	fieldReference
	fieldOriginX
	fieldOriginY
	fieldWidth
	fieldHeight
	numFields
)

// Splits an override record into its fields. Quoted fields
// have their quotes removed but keep their escapes, which are
// only interpreted later.
func splitRecord(line string) ([]string, error) {
	lex, err := overrideLexer.LexString("", line)
	if err != nil { return nil, err }
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil { return nil, err }

	fields := make([]string, 1, numFields)
	for _, token := range tokens {
		switch token.Type {
		case commaToken:
			fields = append(fields, "")
		case stringToken:
			fields[len(fields) - 1] += token.Value[1 : len(token.Value) - 1]
		case bareToken:
			fields[len(fields) - 1] += token.Value
		}
	}
	return fields, nil
}

// Decodes the single character a target or reference field
// refers to. Empty fields return ok == false.
func fieldChar(field string) (rune, bool) {
	if field == "" { return 0, false }
	_, char, _ := esc.Decode(field, 0, false)
	return char, char >= 0
}

func applyOverrides(table *Table, metrics string) {
	for lineNum, line := range strings.Split(metrics, "\n") {
		if strings.TrimSpace(line) == "" { continue }
		fields, err := splitRecord(line)
		if err != nil {
			tracing.Logger().Debug("atlas: skipped override record", "line", lineNum + 1, "err", err)
			continue
		}
		for len(fields) < numFields { fields = append(fields, "") }

		target, ok := fieldChar(fields[fieldTarget])
		if !ok {
			tracing.Logger().Debug("atlas: override record without target", "line", lineNum + 1)
			continue
		}
		reference := target
		if fields[fieldReference] != "" {
			reference, ok = fieldChar(fields[fieldReference])
			if !ok { continue }
		}
		glyph, found := table.glyphs[reference]
		if !found {
			tracing.Logger().Debug("atlas: override reference not assigned",
				"line", lineNum + 1, "reference", string(reference))
			continue
		}

		if value, ok := parseField(fields[fieldOriginX]); ok { glyph.OriginX = clampInt8(value) }
		if value, ok := parseField(fields[fieldOriginY]); ok { glyph.OriginY = clampInt8(value) }
		if value, ok := parseField(fields[fieldWidth]); ok && value != 0 {
			glyph.Width = clampUint8(value)
		}
		if value, ok := parseField(fields[fieldHeight]); ok && value != 0 {
			glyph.Height = clampUint8(value)
		}

		table.glyphs[target] = glyph
		if target == table.tofuChar || target == 0 {
			table.tofuChar, table.tofu, table.hasTofu = target, glyph, true
		}
	}
}

func parseField(field string) (int, bool) {
	field = strings.TrimSpace(field)
	if field == "" { return 0, false }
	value, err := strconv.Atoi(field)
	return value, err == nil
}
