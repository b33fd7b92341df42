package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type item struct {
	Title  string
	Client string
	Status string
}

var engine = Engine[item]{
	Text: []func(item) string{
		func(i item) string { return i.Title },
		func(i item) string { return i.Client },
	},
	Category: func(i item) string { return i.Status },
}

var records = []item{
	{Title: "王大明 v. 台北市政府", Client: "王大明", Status: "active"},
	{Title: "林小華專利糾紛", Client: "林小華", Status: "active"},
	{Title: "陳五房產訴訟", Client: "陳五", Status: "closed"},
	{Title: "趙六諮詢案件", Client: "趙六", Status: "consultation"},
}

func TestApply(t *testing.T) {
	tests := []struct {
		name       string
		query, tab string
		wantTitles []string
	}{
		{
			name: "empty query and all tab returns everything",
			tab:  TabAll,
			wantTitles: []string{
				"王大明 v. 台北市政府", "林小華專利糾紛", "陳五房產訴訟", "趙六諮詢案件",
			},
		},
		{
			name:       "empty tab behaves like all",
			wantTitles: []string{"王大明 v. 台北市政府", "林小華專利糾紛", "陳五房產訴訟", "趙六諮詢案件"},
		},
		{
			name:       "query matches title substring",
			query:      "專利",
			tab:        TabAll,
			wantTitles: []string{"林小華專利糾紛"},
		},
		{
			name:       "query matches any text field",
			query:      "陳五",
			tab:        TabAll,
			wantTitles: []string{"陳五房產訴訟"},
		},
		{
			name:       "query is case-insensitive",
			query:      "V. 台北",
			tab:        TabAll,
			wantTitles: []string{"王大明 v. 台北市政府"},
		},
		{
			name:       "tab narrows by exact category",
			tab:        "active",
			wantTitles: []string{"王大明 v. 台北市政府", "林小華專利糾紛"},
		},
		{
			name:       "query and tab combine as AND",
			query:      "王",
			tab:        "active",
			wantTitles: []string{"王大明 v. 台北市政府"},
		},
		{
			name:       "no matches yields empty",
			query:      "不存在",
			tab:        TabAll,
			wantTitles: nil,
		},
		{
			name:       "tab with no members yields empty",
			tab:        "suspended",
			wantTitles: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := engine.Apply(records, tt.query, tt.tab)
			titles := make([]string, 0, len(got))
			for _, r := range got {
				titles = append(titles, r.Title)
			}
			if tt.wantTitles == nil {
				assert.Empty(t, titles)
				return
			}
			assert.Equal(t, tt.wantTitles, titles)
		})
	}
}

func TestApplyPreservesInputOrder(t *testing.T) {
	got := engine.Apply(records, "", "active")
	// Matches come back as a subsequence of the input, never reordered.
	assert.Equal(t, []item{records[0], records[1]}, got)
}

func TestApplyWithoutCategoryIgnoresTab(t *testing.T) {
	textOnly := Engine[item]{
		Text: []func(item) string{func(i item) string { return i.Title }},
	}
	got := textOnly.Apply(records, "", "closed")
	assert.Len(t, got, len(records))
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	before := make([]item, len(records))
	copy(before, records)

	engine.Apply(records, "專利", "active")
	assert.Equal(t, before, records)
}
