package outcomes

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// CustomView es una vista declarada en YAML sobre el pipeline genérico (Query).
type CustomView struct {
	Name        ViewName
	Description string
	Query       Query
}

type customViewFile struct {
	Views []customViewYAML `yaml:"views"`
}

type customViewYAML struct {
	Name             string            `yaml:"name"`
	Description      string            `yaml:"description"`
	GroupBy          []string          `yaml:"group_by"`
	Bins             *BinSpec          `yaml:"bins"`
	PreEquals        map[string]string `yaml:"pre_equals"`
	PostEquals       map[string]string `yaml:"post_equals"`
	Percentage       bool              `yaml:"percentage"`
	PercentageWithin []string          `yaml:"percentage_within"`
}

var viewNameRe = regexp.MustCompile(`^[a-z0-9][a-z0-9-]*$`)

// ParseCustomViews lee definiciones de vistas desde YAML y las valida.
func ParseCustomViews(r io.Reader) ([]CustomView, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read view definitions: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var f customViewFile
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode view definitions: %w", err)
	}

	seen := map[ViewName]bool{}
	out := make([]CustomView, 0, len(f.Views))
	for i, y := range f.Views {
		cv, err := y.toCustomView()
		if err != nil {
			return nil, fmt.Errorf("view #%d (%s): %w", i+1, y.Name, err)
		}
		if seen[cv.Name] {
			return nil, fmt.Errorf("view #%d: duplicated name %q", i+1, cv.Name)
		}
		seen[cv.Name] = true
		out = append(out, cv)
	}
	return out, nil
}

func (y customViewYAML) toCustomView() (CustomView, error) {
	name := ViewName(strings.TrimSpace(y.Name))
	if !viewNameRe.MatchString(string(name)) {
		return CustomView{}, invalid("name", "must match %s", viewNameRe)
	}
	if _, ok := lookupBuiltin(name); ok {
		return CustomView{}, invalid("name", "%q is a built-in view", name)
	}

	q := Query{
		Bins:             y.Bins,
		GroupBy:          toColumns(y.GroupBy),
		PreEquals:        toColumnMap(y.PreEquals),
		PostEquals:       toColumnMap(y.PostEquals),
		Percentage:       y.Percentage || len(y.PercentageWithin) > 0,
		PercentageWithin: toColumns(y.PercentageWithin),
	}

	local := map[Column]bool{}
	if q.Bins != nil {
		if q.Bins.Target == "" {
			q.Bins.Target = ColAgeGroup
		}
		if n := q.Bins.Count; n != nil && (*n < MinBins || *n > MaxBins) {
			return CustomView{}, invalid("bins", "must be between %d and %d, got %d", MinBins, MaxBins, *n)
		}
		if !KnownColumn(q.Bins.Source) {
			return CustomView{}, invalid("bins", "unknown source column %q", q.Bins.Source)
		}
		local[q.Bins.Target] = true
	}

	known := func(c Column) bool { return KnownColumn(c) || local[c] }

	if len(q.GroupBy) == 0 || len(q.GroupBy) > maxGroupKeys {
		return CustomView{}, invalid("group_by", "expected 1 to %d keys, got %d", maxGroupKeys, len(q.GroupBy))
	}
	for _, c := range q.GroupBy {
		if !known(c) {
			return CustomView{}, invalid("group_by", "unknown column %q", c)
		}
	}
	for c := range q.PreEquals {
		if !known(c) {
			return CustomView{}, invalid("pre_equals", "unknown column %q", c)
		}
	}
	for c := range q.PostEquals {
		if !containsColumn(q.GroupBy, c) {
			return CustomView{}, invalid("post_equals", "column %q is not a group key", c)
		}
	}
	for _, c := range q.PercentageWithin {
		if !containsColumn(q.GroupBy, c) {
			return CustomView{}, invalid("percentage_within", "column %q is not a group key", c)
		}
	}

	return CustomView{Name: name, Description: strings.TrimSpace(y.Description), Query: q}, nil
}

// resolve combina la definición con los parámetros del request.
func (cv CustomView) resolve(p Params) Query {
	q := cv.Query
	q.Filters = p.Filters

	if p.OutcomeType != "" {
		pre := make(map[Column]string, len(q.PreEquals)+1)
		for k, v := range q.PreEquals {
			pre[k] = v
		}
		pre[ColOutcomeType] = p.OutcomeType
		q.PreEquals = pre
	}
	if q.Bins != nil && p.Bins != nil {
		b := *q.Bins
		n := *p.Bins
		b.Count = &n
		q.Bins = &b
	}
	return q
}

func toColumns(in []string) []Column {
	if len(in) == 0 {
		return nil
	}
	out := make([]Column, len(in))
	for i, s := range in {
		out[i] = Column(strings.TrimSpace(s))
	}
	return out
}

func toColumnMap(in map[string]string) map[Column]string {
	if len(in) == 0 {
		return nil
	}
	out := make(map[Column]string, len(in))
	for k, v := range in {
		out[Column(strings.TrimSpace(k))] = v
	}
	return out
}

func containsColumn(cs []Column, c Column) bool {
	for _, x := range cs {
		if x == c {
			return true
		}
	}
	return false
}
