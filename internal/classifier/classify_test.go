package classifier_test

import (
	"testing"

	"naukri/matcher-service/internal/classifier"
	"naukri/matcher-service/internal/model"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		job   string
		state string
		want  model.CategoryTag
	}{
		{name: "SSC", job: "SSC CGL 2024", state: model.AllIndia, want: model.TagSSC},
		{name: "lowercase SSC", job: "ssc gd constable", state: model.AllIndia, want: model.TagSSC},
		{name: "bank", job: "Bank of Baroda PO", state: model.AllIndia, want: model.TagBanking},
		{name: "SBI", job: "SBI Clerk", state: model.AllIndia, want: model.TagBanking},
		{name: "IBPS", job: "IBPS RRB Officer Scale I", state: model.AllIndia, want: model.TagBanking},
		{name: "agniveer", job: "Indian Army Agniveer", state: model.AllIndia, want: model.TagDefence},
		{name: "defence", job: "Defence Civilian Staff", state: model.AllIndia, want: model.TagDefence},
		{name: "teacher", job: "KVS Primary Teacher", state: model.AllIndia, want: model.TagTeaching},
		{name: "PGT", job: "DSSSB PGT Maths", state: "Delhi", want: model.TagTeaching},
		{name: "railway", job: "Railway Group D", state: model.AllIndia, want: model.TagRailways},
		{name: "RRB", job: "RRB NTPC", state: model.AllIndia, want: model.TagRailways},
		{name: "state posting", job: "UPPSC Lower Subordinate", state: "Uttar Pradesh", want: model.TagStateGovt},
		{name: "empty state is not All India", job: "Forest Guard", state: "", want: model.TagStateGovt},
		{name: "national fallback", job: "UPSC Civil Services", state: model.AllIndia, want: model.TagOther},
		{name: "empty name", job: "", state: model.AllIndia, want: model.TagOther},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifier.Classify(model.JobPosting{Name: tt.job, State: tt.state})
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.job, tt.state, got, tt.want)
			}
		})
	}
}

// Precedence follows the rule order, not which keyword appears first in the
// name.
func TestClassify_Precedence(t *testing.T) {
	tests := []struct {
		job  string
		want model.CategoryTag
	}{
		{"Railway Police Constable", model.TagDefence},
		{"SSC Railway Protection Force", model.TagSSC},
		{"Army Public School Teacher", model.TagDefence},
		{"Bank Teacher Training", model.TagBanking},
		{"RRB Teacher Recruitment", model.TagTeaching},
	}
	for _, tt := range tests {
		got := classifier.Classify(model.JobPosting{Name: tt.job, State: "Bihar"})
		if got != tt.want {
			t.Errorf("Classify(%q) = %q, want %q", tt.job, got, tt.want)
		}
	}
}

// Every input maps to one of the seven defined tags.
func TestClassify_Total(t *testing.T) {
	valid := make(map[model.CategoryTag]bool, len(model.CategoryTags))
	for _, tag := range model.CategoryTags {
		valid[tag] = true
	}
	names := []string{"", " ", "x", "12345", "टीचर भर्ती", "SSC", "Police", "misc post"}
	states := []string{"", model.AllIndia, "Kerala"}
	for _, n := range names {
		for _, s := range states {
			got := classifier.Classify(model.JobPosting{Name: n, State: s})
			if !valid[got] {
				t.Errorf("Classify(%q, %q) = %q, not a defined tag", n, s, got)
			}
		}
	}
}
