package query

import (
	"strings"

	"github.com/tanaylab/daf-go/daferr"
)

// Parse parses a pipeline expression of the form
// "selector ('|' operation)*" (spec §4.7), where selector is one of
// vec(axis, name), mat(rows, cols, name), scalar(name), and each
// operation is a projection "@entry", a slice "[entry, ...]" or
// "[true, false, ...]", or a registered operation "Name" or
// "Name(key=value, ...)".
func Parse(expr string) (*Query, error) {
	segments := strings.Split(expr, "|")
	if len(segments) == 0 || strings.TrimSpace(segments[0]) == "" {
		return nil, daferr.QueryParseErrorf(expr, "empty expression")
	}

	sel, err := parseSelector(expr, strings.TrimSpace(segments[0]))
	if err != nil {
		return nil, err
	}

	q := &Query{source: expr, selector: sel}
	for _, raw := range segments[1:] {
		seg := strings.TrimSpace(raw)
		if seg == "" {
			return nil, daferr.QueryParseErrorf(expr, "empty pipeline segment")
		}
		s, err := parseStep(expr, seg)
		if err != nil {
			return nil, err
		}
		q.steps = append(q.steps, s)
	}
	return q, nil
}

func parseSelector(expr, seg string) (selector, error) {
	switch {
	case strings.HasPrefix(seg, "vec(") && strings.HasSuffix(seg, ")"):
		args := splitArgs(seg[len("vec(") : len(seg)-1])
		if len(args) != 2 {
			return selector{}, daferr.QueryParseErrorf(expr, "vec(axis, name) takes two arguments")
		}
		return selector{kind: selectVector, axis: args[0], name: args[1]}, nil
	case strings.HasPrefix(seg, "mat(") && strings.HasSuffix(seg, ")"):
		args := splitArgs(seg[len("mat(") : len(seg)-1])
		if len(args) != 3 {
			return selector{}, daferr.QueryParseErrorf(expr, "mat(rows, cols, name) takes three arguments")
		}
		return selector{kind: selectMatrix, rowsAxis: args[0], colsAxis: args[1], name: args[2]}, nil
	case strings.HasPrefix(seg, "scalar(") && strings.HasSuffix(seg, ")"):
		args := splitArgs(seg[len("scalar(") : len(seg)-1])
		if len(args) != 1 {
			return selector{}, daferr.QueryParseErrorf(expr, "scalar(name) takes one argument")
		}
		return selector{kind: selectScalar, name: args[0]}, nil
	default:
		return selector{}, daferr.QueryParseErrorf(expr, "unrecognized selector: "+seg)
	}
}

func parseStep(expr, seg string) (step, error) {
	switch {
	case strings.HasPrefix(seg, "@"):
		entry := strings.TrimSpace(seg[1:])
		if entry == "" {
			return step{}, daferr.QueryParseErrorf(expr, "projection requires an entry name")
		}
		return step{kind: stepProjection, entry: entry}, nil

	case strings.HasPrefix(seg, "[") && strings.HasSuffix(seg, "]"):
		tokens := splitArgs(seg[1 : len(seg)-1])
		if len(tokens) == 0 {
			return step{}, daferr.QueryParseErrorf(expr, "slice requires at least one entry")
		}
		if isBooleanMask(tokens) {
			mask := make([]bool, len(tokens))
			for i, tok := range tokens {
				mask[i] = tok == "true"
			}
			return step{kind: stepSlice, byMask: true, mask: mask}, nil
		}
		return step{kind: stepSlice, entries: tokens}, nil

	default:
		name := seg
		params := map[string]string{}
		if open := strings.IndexByte(seg, '('); open >= 0 {
			if !strings.HasSuffix(seg, ")") {
				return step{}, daferr.QueryParseErrorf(expr, "unterminated operation arguments: "+seg)
			}
			name = strings.TrimSpace(seg[:open])
			inner := seg[open+1 : len(seg)-1]
			if strings.TrimSpace(inner) != "" {
				for _, pair := range splitArgs(inner) {
					key, value, ok := strings.Cut(pair, "=")
					if !ok {
						return step{}, daferr.QueryParseErrorf(expr, "malformed parameter: "+pair)
					}
					params[strings.TrimSpace(key)] = strings.TrimSpace(value)
				}
			}
		}
		if name == "" {
			return step{}, daferr.QueryParseErrorf(expr, "empty operation name")
		}
		return step{kind: stepOperation, name: name, params: params}, nil
	}
}

func isBooleanMask(tokens []string) bool {
	for _, tok := range tokens {
		if tok != "true" && tok != "false" {
			return false
		}
	}
	return true
}

func splitArgs(s string) []string {
	raw := strings.Split(s, ",")
	out := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
