package transform

import (
	"applicant-portal-service/internal/config"
	"applicant-portal-service/internal/models"
)

// DefaultJobPreferencesForm returns the form value seeded before any backend
// data arrives. The distance default comes from service config.
func DefaultJobPreferencesForm() models.JobPreferencesForm {
	return models.JobPreferencesForm{
		Distance:          config.ServiceConfig.Portal.DefaultDistance,
		PostingDate:       string(models.PostingDateAllTime),
		ExperienceLevels:  []string{},
		JobTypes:          []string{},
		Positions:         []string{},
		Locations:         []string{},
		CompanyBlacklist:  []string{},
		TitleBlacklist:    []string{},
		LocationBlacklist: []string{},
	}
}

// ConfigToForm converts the backend config shape into the form shape. It is
// total: a nil input yields the default form. Flag groups become string
// arrays in canonical enumeration order regardless of source key order.
func ConfigToForm(api *models.ConfigPublic) models.JobPreferencesForm {
	form := DefaultJobPreferencesForm()
	if api == nil {
		return form
	}

	form.Remote = api.Remote
	form.Hybrid = api.Hybrid
	form.Onsite = api.Onsite
	form.ApplyOnceAtCompany = api.ApplyOnceAtCompany
	form.Distance = api.Distance

	for _, level := range models.ExperienceLevelOrder {
		if experienceLevelSet(&api.ExperienceLevel, level) {
			form.ExperienceLevels = append(form.ExperienceLevels, string(level))
		}
	}
	for _, jobType := range models.JobTypeOrder {
		if jobTypeSet(&api.JobTypes, jobType) {
			form.JobTypes = append(form.JobTypes, string(jobType))
		}
	}

	// Each check overwrites the previous value, so with anomalous multi-true
	// input the last flag in this sequence wins.
	form.PostingDate = string(models.PostingDateAllTime)
	if api.Date.Month {
		form.PostingDate = string(models.PostingDateMonth)
	}
	if api.Date.Week {
		form.PostingDate = string(models.PostingDateWeek)
	}
	if api.Date.Hours {
		form.PostingDate = string(models.PostingDateHours)
	}

	form.Positions = orEmpty(api.Positions)
	form.Locations = orEmpty(api.Locations)
	form.CompanyBlacklist = orEmpty(api.CompanyBlacklist)
	form.TitleBlacklist = orEmpty(api.TitleBlacklist)
	form.LocationBlacklist = orEmpty(api.LocationBlacklist)

	return form
}

// FormToConfig converts the form shape into the backend config shape. The
// posting-date group comes out one-hot for any well-formed form value; this
// direction is the canonical producer of valid payloads.
func FormToConfig(form *models.JobPreferencesForm) models.ConfigPublic {
	api := models.ConfigPublic{}
	if form == nil {
		api.Date.AllTime = true
		api.Positions = []string{}
		api.Locations = []string{}
		api.CompanyBlacklist = []string{}
		api.TitleBlacklist = []string{}
		api.LocationBlacklist = []string{}
		return api
	}

	api.Remote = form.Remote
	api.Hybrid = form.Hybrid
	api.Onsite = form.Onsite
	api.ApplyOnceAtCompany = form.ApplyOnceAtCompany
	api.Distance = form.Distance

	api.ExperienceLevel = models.ExperienceLevelFlags{
		Internship:     contains(form.ExperienceLevels, string(models.ExperienceLevelInternship)),
		Entry:          contains(form.ExperienceLevels, string(models.ExperienceLevelEntry)),
		Associate:      contains(form.ExperienceLevels, string(models.ExperienceLevelAssociate)),
		MidSeniorLevel: contains(form.ExperienceLevels, string(models.ExperienceLevelMidSenior)),
		Director:       contains(form.ExperienceLevels, string(models.ExperienceLevelDirector)),
		Executive:      contains(form.ExperienceLevels, string(models.ExperienceLevelExecutive)),
	}
	api.JobTypes = models.JobTypeFlags{
		FullTime:   contains(form.JobTypes, string(models.JobTypeFullTime)),
		Contract:   contains(form.JobTypes, string(models.JobTypeContract)),
		PartTime:   contains(form.JobTypes, string(models.JobTypePartTime)),
		Temporary:  contains(form.JobTypes, string(models.JobTypeTemporary)),
		Internship: contains(form.JobTypes, string(models.JobTypeInternship)),
		Other:      contains(form.JobTypes, string(models.JobTypeOther)),
		Volunteer:  contains(form.JobTypes, string(models.JobTypeVolunteer)),
	}
	api.Date = models.PostingDateFlags{
		AllTime: form.PostingDate == string(models.PostingDateAllTime),
		Month:   form.PostingDate == string(models.PostingDateMonth),
		Week:    form.PostingDate == string(models.PostingDateWeek),
		Hours:   form.PostingDate == string(models.PostingDateHours),
	}
	// Unknown posting-date strings fold into the all_time bucket so the
	// encoding stays exactly-one-true.
	if !api.Date.Month && !api.Date.Week && !api.Date.Hours {
		api.Date.AllTime = true
	}

	api.Positions = orEmpty(form.Positions)
	api.Locations = orEmpty(form.Locations)
	api.CompanyBlacklist = orEmpty(form.CompanyBlacklist)
	api.TitleBlacklist = orEmpty(form.TitleBlacklist)
	api.LocationBlacklist = orEmpty(form.LocationBlacklist)

	return api
}

func experienceLevelSet(flags *models.ExperienceLevelFlags, level models.ExperienceLevel) bool {
	switch level {
	case models.ExperienceLevelInternship:
		return flags.Internship
	case models.ExperienceLevelEntry:
		return flags.Entry
	case models.ExperienceLevelAssociate:
		return flags.Associate
	case models.ExperienceLevelMidSenior:
		return flags.MidSeniorLevel
	case models.ExperienceLevelDirector:
		return flags.Director
	case models.ExperienceLevelExecutive:
		return flags.Executive
	}
	return false
}

func jobTypeSet(flags *models.JobTypeFlags, jobType models.JobType) bool {
	switch jobType {
	case models.JobTypeFullTime:
		return flags.FullTime
	case models.JobTypeContract:
		return flags.Contract
	case models.JobTypePartTime:
		return flags.PartTime
	case models.JobTypeTemporary:
		return flags.Temporary
	case models.JobTypeInternship:
		return flags.Internship
	case models.JobTypeOther:
		return flags.Other
	case models.JobTypeVolunteer:
		return flags.Volunteer
	}
	return false
}

func contains(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func orEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
