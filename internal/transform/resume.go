package transform

import (
	"encoding/json"
	"log"
	"strconv"
	"strings"

	"applicant-portal-service/internal/models"
)

// rangeDelimiter separates the two halves of joined period and salary
// strings ("2020-01 - 2022-06", "50000 - 70000"). The surrounding spaces
// matter: dates themselves contain bare hyphens.
const rangeDelimiter = " - "

func DefaultResumeForm() models.ResumeForm {
	return models.ResumeForm{
		PersonalInformation: models.PersonalInformation{},
		Education:           []models.EducationForm{},
		WorkExperience:      []models.WorkExperienceForm{},
		Projects:            []models.ProjectForm{},
		Skills:              []string{},
		Languages:           []models.Language{},
		SalaryExpectation:   models.SalaryExpectation{Currency: "USD"},
		Interests:           []string{},
	}
}

// ResumeToForm converts whatever the backend returned for the plain-text
// resume into the form shape. It tolerates four input shapes: empty/null
// (defaults), a JSON-encoded string (parsed and mapped, parse failure
// degrades to defaults), a structured object carrying personal_information
// (full mapping), and anything else (defaults). It never propagates a
// failure outward.
func ResumeToForm(raw json.RawMessage) (form models.ResumeForm) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("resume conversion panicked, falling back to defaults: %v", r)
			form = DefaultResumeForm()
		}
	}()

	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return DefaultResumeForm()
	}

	if strings.HasPrefix(trimmed, `"`) {
		var inner string
		if err := json.Unmarshal([]byte(trimmed), &inner); err != nil {
			log.Printf("resume payload is not a valid JSON string: %v", err)
			return DefaultResumeForm()
		}
		return ResumeToForm(json.RawMessage(inner))
	}

	var api models.ResumeAPI
	if err := json.Unmarshal([]byte(trimmed), &api); err != nil {
		log.Printf("resume payload failed to parse: %v", err)
		return DefaultResumeForm()
	}
	if api.PersonalInformation == nil {
		return DefaultResumeForm()
	}

	return resumeAPIToForm(&api)
}

func resumeAPIToForm(api *models.ResumeAPI) models.ResumeForm {
	form := DefaultResumeForm()
	form.PersonalInformation = *api.PersonalInformation

	for _, edu := range api.Education {
		start, end := splitRange(edu.YearRange)
		form.Education = append(form.Education, models.EducationForm{
			Institution:  edu.Institution,
			Degree:       edu.Degree,
			FieldOfStudy: edu.FieldOfStudy,
			StartDate:    start,
			EndDate:      end,
			Description:  edu.Description,
		})
	}

	for _, exp := range api.WorkExperience {
		start, end := splitRange(exp.EmploymentPeriod)
		form.WorkExperience = append(form.WorkExperience, models.WorkExperienceForm{
			Position:    exp.Position,
			Company:     exp.Company,
			Location:    exp.Location,
			StartDate:   start,
			EndDate:     end,
			Description: exp.Description,
			Skills:      append([]string{}, exp.SkillsAcquired...),
		})
	}

	for _, proj := range api.Projects {
		start, end := splitRange(proj.Period)
		form.Projects = append(form.Projects, models.ProjectForm{
			Name:        proj.Name,
			Description: proj.Description,
			Link:        proj.Link,
			StartDate:   start,
			EndDate:     end,
		})
	}

	// Skills are the union of every experience's skills_acquired plus the
	// top-level skills list, deduplicated.
	seen := make(map[string]bool)
	for _, exp := range api.WorkExperience {
		for _, skill := range exp.SkillsAcquired {
			if skill != "" && !seen[skill] {
				seen[skill] = true
				form.Skills = append(form.Skills, skill)
			}
		}
	}
	for _, skill := range api.Skills {
		if skill != "" && !seen[skill] {
			seen[skill] = true
			form.Skills = append(form.Skills, skill)
		}
	}

	if api.Languages != nil {
		form.Languages = api.Languages
	}

	minSalary, maxSalary := parseSalaryRange(api.SalaryRangeUSD)
	form.SalaryExpectation = models.SalaryExpectation{
		Minimum:  minSalary,
		Maximum:  maxSalary,
		Currency: "USD",
	}

	if api.WorkPreference != nil {
		form.WorkPreference = models.WorkPreference{
			Remote:     api.WorkPreference.Remote,
			OnSite:     api.WorkPreference.OnSite,
			Relocation: api.WorkPreference.Relocation,
			// The backend has no hybrid member, so it always reads false.
			Hybrid: false,
		}
	}

	if api.Interests != nil {
		form.Interests = api.Interests
	}

	return form
}

// ResumeFormToAPI builds the nested backend shape from the form. The joins
// are lossy on purpose: period and salary strings lose the original
// formatting, and aggregated skills are not redistributed back to the
// experiences they came from. Any panic during construction is swallowed and
// an empty object returned.
func ResumeFormToAPI(form *models.ResumeForm) (api models.ResumeAPI) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("resume form conversion panicked, returning empty payload: %v", r)
			api = models.ResumeAPI{}
		}
	}()

	personal := form.PersonalInformation
	api.PersonalInformation = &personal

	for _, edu := range form.Education {
		end := edu.EndDate
		if edu.Current {
			end = ""
		}
		api.Education = append(api.Education, models.EducationAPI{
			Institution:  edu.Institution,
			Degree:       edu.Degree,
			FieldOfStudy: edu.FieldOfStudy,
			YearRange:    joinRange(edu.StartDate, end),
			Description:  edu.Description,
		})
	}

	for _, exp := range form.WorkExperience {
		end := exp.EndDate
		if exp.Current {
			end = ""
		}
		api.WorkExperience = append(api.WorkExperience, models.WorkExperienceAPI{
			Position:         exp.Position,
			Company:          exp.Company,
			Location:         exp.Location,
			EmploymentPeriod: joinRange(exp.StartDate, end),
			Description:      exp.Description,
			SkillsAcquired:   append([]string{}, exp.Skills...),
		})
	}

	for _, proj := range form.Projects {
		end := proj.EndDate
		if proj.Current {
			end = ""
		}
		api.Projects = append(api.Projects, models.ProjectAPI{
			Name:        proj.Name,
			Description: proj.Description,
			Link:        proj.Link,
			Period:      joinRange(proj.StartDate, end),
		})
	}

	api.Skills = append([]string{}, form.Skills...)
	api.Languages = form.Languages
	api.Interests = form.Interests

	// The salary range is emitted only when both bounds exist.
	if form.SalaryExpectation.Minimum != nil && form.SalaryExpectation.Maximum != nil {
		api.SalaryRangeUSD = strconv.Itoa(*form.SalaryExpectation.Minimum) +
			rangeDelimiter + strconv.Itoa(*form.SalaryExpectation.Maximum)
	}

	api.WorkPreference = &models.WorkPreferenceAPI{
		Remote:     form.WorkPreference.Remote,
		OnSite:     form.WorkPreference.OnSite,
		Relocation: form.WorkPreference.Relocation,
	}

	return api
}

// splitRange splits a joined "<start> - <end>" string. Without the
// delimiter the whole value is the start and the end is empty.
func splitRange(joined string) (string, string) {
	parts := strings.SplitN(joined, rangeDelimiter, 2)
	if len(parts) == 1 {
		return strings.TrimSpace(parts[0]), ""
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
}

func joinRange(start, end string) string {
	if start == "" {
		return ""
	}
	if end == "" {
		return start
	}
	return start + rangeDelimiter + end
}

// parseSalaryRange extracts integer bounds from "<min> - <max>". Segments
// without digits yield a nil bound rather than an error.
func parseSalaryRange(joined string) (*int, *int) {
	if joined == "" {
		return nil, nil
	}
	minPart, maxPart := splitRange(joined)
	return parseSalaryBound(minPart), parseSalaryBound(maxPart)
}

func parseSalaryBound(segment string) *int {
	var digits strings.Builder
	for _, r := range segment {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return nil
	}
	value, err := strconv.Atoi(digits.String())
	if err != nil {
		return nil
	}
	return &value
}
