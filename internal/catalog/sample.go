package catalog

import (
	"time"

	"naukri/matcher-service/internal/model"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SampleJobs returns a small catalog used to seed empty stores and by the
// memory driver. Deadlines are relative to now so the sample stays open.
func SampleJobs(now time.Time) []model.JobPosting {
	base := Cutoff(now)
	in := func(days int) time.Time { return base.AddDate(0, 0, days) }
	created := date(2025, time.January, 1)

	jobs := []model.JobPosting{
		{
			ID: "ssc-cgl-2025", Name: "SSC CGL 2025",
			MinAge: 18, MaxAge: 32, Qualification: model.QualificationGraduate,
			Category: model.CategoryAll, Gender: model.GenderAll, State: model.AllIndia,
			CompetitionLevel: model.CompetitionHigh, Status: model.StatusActive,
			Deadline: in(30), RequiredStreams: []string{model.AnyStream},
			SalaryRange: "₹25,500 - ₹1,51,100", ApplyLink: "https://ssc.gov.in",
		},
		{
			ID: "sbi-clerk-2025", Name: "SBI Clerk (Junior Associate)",
			MinAge: 20, MaxAge: 28, Qualification: model.QualificationGraduate,
			Category: model.CategoryAll, Gender: model.GenderAll, State: model.AllIndia,
			CompetitionLevel: model.CompetitionMedium, Status: model.StatusActive,
			Deadline: in(14), RequiredStreams: []string{model.AnyStream},
			SalaryRange: "₹26,730 - ₹64,480", ApplyLink: "https://sbi.co.in/careers",
		},
		{
			ID: "army-agniveer-2025", Name: "Indian Army Agniveer GD",
			MinAge: 17, MaxAge: 21, Qualification: model.QualificationTenth,
			Category: model.CategoryAll, Gender: model.GenderMale, State: model.AllIndia,
			CompetitionLevel: model.CompetitionHigh, Status: model.StatusActive,
			Deadline: in(21), RequiredStreams: []string{model.AnyStream},
			SalaryRange: "₹30,000 - ₹40,000", ApplyLink: "https://joinindianarmy.nic.in",
		},
		{
			ID: "kvs-pgt-physics", Name: "KVS PGT Physics",
			MinAge: 21, MaxAge: 40, Qualification: model.QualificationPostGraduate,
			Category: model.CategoryAll, Gender: model.GenderAll, State: model.AllIndia,
			CompetitionLevel: model.CompetitionLow, Status: model.StatusActive,
			Deadline: in(45), RequiredStreams: []string{"Science"},
			SalaryRange: "₹47,600 - ₹1,51,100", ApplyLink: "https://kvsangathan.nic.in",
		},
		{
			ID: "rrb-ntpc-12", Name: "RRB NTPC Undergraduate",
			MinAge: 18, MaxAge: 30, Qualification: model.QualificationTwelfth,
			Category: model.CategoryAll, Gender: model.GenderAll, State: model.AllIndia,
			CompetitionLevel: model.CompetitionHigh, Status: model.StatusActive,
			Deadline: in(10), RequiredStreams: []string{model.AnyStream},
			SalaryRange: "₹19,900 - ₹63,200", ApplyLink: "https://indianrailways.gov.in",
		},
		{
			ID: "up-police-si", Name: "UP Police Sub Inspector",
			MinAge: 21, MaxAge: 28, Qualification: model.QualificationGraduate,
			Category: model.CategoryAll, Gender: model.GenderAll, State: "Uttar Pradesh",
			CompetitionLevel: model.CompetitionMedium, Status: model.StatusActive,
			Deadline: in(20), RequiredStreams: []string{model.AnyStream},
			SalaryRange: "₹35,400 - ₹1,12,400", ApplyLink: "https://uppbpb.gov.in",
		},
		{
			ID: "bihar-anm", Name: "Bihar ANM Health Worker",
			MinAge: 18, MaxAge: 37, Qualification: model.QualificationTwelfth,
			Category: model.CategoryAll, Gender: model.GenderFemale, State: "Bihar",
			CompetitionLevel: model.CompetitionLow, Status: model.StatusActive,
			Deadline: in(25), RequiredStreams: []string{"Science"},
			SalaryRange: "₹21,700 - ₹69,100",
		},
		{
			ID: "upsc-cse-2025", Name: "UPSC Civil Services",
			MinAge: 21, MaxAge: 32, Qualification: model.QualificationGraduate,
			Category: model.CategoryAll, Gender: model.GenderAll, State: model.AllIndia,
			CompetitionLevel: model.CompetitionHigh, Status: model.StatusDraft,
			Deadline: in(60), RequiredStreams: []string{model.AnyStream},
			SalaryRange: "₹56,100 - ₹2,50,000", ApplyLink: "https://upsc.gov.in",
		},
	}
	for i := range jobs {
		// Distinct creation times keep the newest-first order stable.
		jobs[i].CreatedAt = created.Add(time.Duration(len(jobs)-i) * time.Hour)
		jobs[i].UpdatedAt = jobs[i].CreatedAt
	}
	return jobs
}
