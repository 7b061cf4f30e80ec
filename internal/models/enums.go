package models

type ExperienceLevel string

const (
	ExperienceLevelInternship ExperienceLevel = "internship"
	ExperienceLevelEntry      ExperienceLevel = "entry"
	ExperienceLevelAssociate  ExperienceLevel = "associate"
	ExperienceLevelMidSenior  ExperienceLevel = "mid_senior_level"
	ExperienceLevelDirector   ExperienceLevel = "director"
	ExperienceLevelExecutive  ExperienceLevel = "executive"
)

// ExperienceLevelOrder is the canonical enumeration order. Form-side arrays
// always follow this order, never the encounter order of the source object.
var ExperienceLevelOrder = []ExperienceLevel{
	ExperienceLevelInternship,
	ExperienceLevelEntry,
	ExperienceLevelAssociate,
	ExperienceLevelMidSenior,
	ExperienceLevelDirector,
	ExperienceLevelExecutive,
}

type JobType string

const (
	JobTypeFullTime   JobType = "full_time"
	JobTypeContract   JobType = "contract"
	JobTypePartTime   JobType = "part_time"
	JobTypeTemporary  JobType = "temporary"
	JobTypeInternship JobType = "internship"
	JobTypeOther      JobType = "other"
	JobTypeVolunteer  JobType = "volunteer"
)

var JobTypeOrder = []JobType{
	JobTypeFullTime,
	JobTypeContract,
	JobTypePartTime,
	JobTypeTemporary,
	JobTypeInternship,
	JobTypeOther,
	JobTypeVolunteer,
}

type PostingDate string

const (
	PostingDateAllTime PostingDate = "all_time"
	PostingDateMonth   PostingDate = "month"
	PostingDateWeek    PostingDate = "week"
	PostingDateHours   PostingDate = "hours"
)

type LanguageLevel string

const (
	LanguageLevelNative       LanguageLevel = "Native"
	LanguageLevelFluent       LanguageLevel = "Fluent"
	LanguageLevelProfessional LanguageLevel = "Professional"
	LanguageLevelIntermediate LanguageLevel = "Intermediate"
	LanguageLevelBeginner     LanguageLevel = "Beginner"
)

// DistanceOptions is the fixed radius domain in miles. Zero means no limit.
var DistanceOptions = []int{0, 5, 10, 25, 50, 100}

func IsValidDistance(miles int) bool {
	for _, d := range DistanceOptions {
		if d == miles {
			return true
		}
	}
	return false
}
