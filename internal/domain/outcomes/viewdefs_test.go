package outcomes

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const viewsYAML = `
views:
  - name: color-by-year
    description: outcomes per color and year
    group_by: [year, color]
    percentage: true
  - name: adoption-age-groups
    group_by: [age_group_months, sex_upon_outcome]
    bins:
      source: outcome_age_months
      count: 5
    pre_equals:
      outcome_type: Adoption
    percentage_within: [age_group_months]
`

func TestParseCustomViews(t *testing.T) {
	views, err := ParseCustomViews(strings.NewReader(viewsYAML))
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, ViewName("color-by-year"), views[0].Name)
	assert.Equal(t, []Column{ColYear, ColColor}, views[0].Query.GroupBy)
	assert.True(t, views[0].Query.Percentage)

	q := views[1].Query
	require.NotNil(t, q.Bins)
	assert.Equal(t, ColAgeGroup, q.Bins.Target)
	assert.Equal(t, map[Column]string{ColOutcomeType: "Adoption"}, q.PreEquals)
	assert.True(t, q.Percentage)
}

func TestParseCustomViews_Empty(t *testing.T) {
	views, err := ParseCustomViews(strings.NewReader("  \n"))
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestParseCustomViews_Invalid(t *testing.T) {
	cases := map[string]string{
		"unknown field":     "views:\n  - name: a\n    group_by: [sex_upon_outcome]\n    colour: red\n",
		"bad name":          "views:\n  - name: Bad Name\n    group_by: [sex_upon_outcome]\n",
		"builtin name":      "views:\n  - name: age-strip\n    group_by: [sex_upon_outcome]\n",
		"no group":          "views:\n  - name: a\n",
		"unknown column":    "views:\n  - name: a\n    group_by: [weight]\n",
		"local w/o bins":    "views:\n  - name: a\n    group_by: [age_group_months]\n",
		"bins out of range": "views:\n  - name: a\n    group_by: [age_group_months]\n    bins: {source: outcome_age_months, count: 500}\n",
		"post not a key":    "views:\n  - name: a\n    group_by: [sex_upon_outcome]\n    post_equals: {breed: Persian}\n",
		"duplicate":         "views:\n  - name: a\n    group_by: [sex_upon_outcome]\n  - name: a\n    group_by: [breed]\n",
		"malformed":         "views: [",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseCustomViews(strings.NewReader(in))
			assert.Error(t, err)
		})
	}
}

func TestCustomView_Resolve(t *testing.T) {
	views, err := ParseCustomViews(strings.NewReader(viewsYAML))
	require.NoError(t, err)
	cv := views[1]

	q := cv.resolve(Params{
		Filters:     Filters{Age: &AgeRange{Min: 0, Max: 10}},
		OutcomeType: "Transfer",
		Bins:        intPtr(8),
	})
	assert.Equal(t, &AgeRange{Min: 0, Max: 10}, q.Filters.Age)
	assert.Equal(t, "Transfer", q.PreEquals[ColOutcomeType])
	assert.Equal(t, intPtr(8), q.Bins.Count)

	assert.Equal(t, "Adoption", cv.Query.PreEquals[ColOutcomeType], "definition must stay untouched")
	assert.Equal(t, intPtr(5), cv.Query.Bins.Count)
}
