package catalog_test

import (
	"errors"
	"testing"
	"time"

	"naukri/matcher-service/internal/catalog"
	"naukri/matcher-service/internal/model"
)

func posting(id string) model.JobPosting {
	return model.JobPosting{
		ID:               id,
		Name:             "Posting " + id,
		MinAge:           18,
		MaxAge:           30,
		Qualification:    model.QualificationGraduate,
		Category:         model.CategoryAll,
		Gender:           model.GenderAll,
		State:            model.AllIndia,
		CompetitionLevel: model.CompetitionMedium,
		Status:           model.StatusActive,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mut     func(*model.JobPosting)
		wantErr bool
	}{
		{"valid", func(j *model.JobPosting) {}, false},
		{"missing name", func(j *model.JobPosting) { j.Name = "" }, true},
		{"negative age", func(j *model.JobPosting) { j.MinAge = -1 }, true},
		{"min above max", func(j *model.JobPosting) { j.MinAge, j.MaxAge = 35, 30 }, true},
		{"equal ages", func(j *model.JobPosting) { j.MinAge, j.MaxAge = 25, 25 }, false},
		{"unknown qualification", func(j *model.JobPosting) { j.Qualification = "PhD" }, true},
		{"unknown category", func(j *model.JobPosting) { j.Category = "EWS" }, true},
		{"unknown gender", func(j *model.JobPosting) { j.Gender = "Other" }, true},
		{"unknown status", func(j *model.JobPosting) { j.Status = "Paused" }, true},
		{"unknown competition", func(j *model.JobPosting) { j.CompetitionLevel = "Extreme" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			j := posting("x")
			tt.mut(&j)
			err := catalog.Validate(j)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() err = %v, wantErr %v", err, tt.wantErr)
			}
			var ve *catalog.ValidationError
			if err != nil && !errors.As(err, &ve) {
				t.Errorf("Validate() err = %T, want *ValidationError", err)
			}
		})
	}
}

func TestCutoff(t *testing.T) {
	ist := time.FixedZone("IST", 5*3600+1800)
	// 02:00 IST on the 10th is still the 9th in UTC.
	now := time.Date(2025, 3, 10, 2, 0, 0, 0, ist)
	want := time.Date(2025, 3, 9, 0, 0, 0, 0, time.UTC)
	if got := catalog.Cutoff(now); !got.Equal(want) {
		t.Errorf("Cutoff() = %v, want %v", got, want)
	}
}

func TestSampleJobs(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	jobs := catalog.SampleJobs(now)
	if len(jobs) == 0 {
		t.Fatal("SampleJobs() returned nothing")
	}
	seen := map[string]bool{}
	for i, j := range jobs {
		if seen[j.ID] {
			t.Errorf("duplicate ID %q", j.ID)
		}
		seen[j.ID] = true
		if err := catalog.Validate(j); err != nil {
			t.Errorf("%s: Validate() = %v", j.ID, err)
		}
		if !j.Deadline.After(now) {
			t.Errorf("%s: deadline %v is not in the future", j.ID, j.Deadline)
		}
		if i > 0 && !jobs[i-1].CreatedAt.After(j.CreatedAt) {
			t.Errorf("%s: sample is not ordered newest first", j.ID)
		}
	}
}
