package models

// ResumeForm is the form-side resume representation. Date ranges and salary
// bounds are individual fields here; the API side joins them into single
// strings (see ResumeAPI).
type ResumeForm struct {
	PersonalInformation PersonalInformation  `json:"personal_information"`
	Education           []EducationForm      `json:"education"`
	WorkExperience      []WorkExperienceForm `json:"work_experience"`
	Projects            []ProjectForm        `json:"projects"`
	Skills              []string             `json:"skills"`
	Languages           []Language           `json:"languages"`
	SalaryExpectation   SalaryExpectation    `json:"salary_expectation"`
	WorkPreference      WorkPreference       `json:"work_preference"`
	Interests           []string             `json:"interests"`
}

type PersonalInformation struct {
	Name        string `json:"name"`
	Surname     string `json:"surname"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	PhonePrefix string `json:"phone_prefix,omitempty"`
	DateOfBirth string `json:"date_of_birth,omitempty"`
	Country     string `json:"country,omitempty"`
	City        string `json:"city,omitempty"`
	Address     string `json:"address,omitempty"`
	ZipCode     string `json:"zip_code,omitempty"`
	LinkedIn    string `json:"linkedin,omitempty"`
	GitHub      string `json:"github,omitempty"`
}

type EducationForm struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	StartDate    string `json:"start_date,omitempty"`
	EndDate      string `json:"end_date,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

type WorkExperienceForm struct {
	Position    string   `json:"position"`
	Company     string   `json:"company"`
	Location    string   `json:"location,omitempty"`
	StartDate   string   `json:"start_date,omitempty"`
	EndDate     string   `json:"end_date,omitempty"`
	Current     bool     `json:"current"`
	Description string   `json:"description,omitempty"`
	Skills      []string `json:"skills,omitempty"`
}

type ProjectForm struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Current     bool   `json:"current"`
}

type Language struct {
	Name  string `json:"name"`
	Level string `json:"level"`
}

// SalaryExpectation bounds are pointers: an unparseable or absent bound is
// nil, never zero or NaN.
type SalaryExpectation struct {
	Minimum  *int   `json:"minimum,omitempty"`
	Maximum  *int   `json:"maximum,omitempty"`
	Currency string `json:"currency,omitempty"`
}

type WorkPreference struct {
	Remote     bool `json:"remote"`
	Hybrid     bool `json:"hybrid"`
	OnSite     bool `json:"on_site"`
	Relocation bool `json:"relocation"`
}

// ResumeAPI is the backend resume shape. Employment periods and salary
// ranges are single joined strings; per-experience skills live in
// skills_acquired.
type ResumeAPI struct {
	PersonalInformation *PersonalInformation `json:"personal_information,omitempty"`
	Education           []EducationAPI       `json:"education,omitempty"`
	WorkExperience      []WorkExperienceAPI  `json:"work_experience,omitempty"`
	Projects            []ProjectAPI         `json:"projects,omitempty"`
	Skills              []string             `json:"skills,omitempty"`
	Languages           []Language           `json:"languages,omitempty"`
	SalaryRangeUSD      string               `json:"salary_range_usd,omitempty"`
	WorkPreference      *WorkPreferenceAPI   `json:"work_preference,omitempty"`
	Interests           []string             `json:"interests,omitempty"`
}

type EducationAPI struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"field_of_study,omitempty"`
	YearRange    string `json:"year_range,omitempty"`
	Description  string `json:"description,omitempty"`
}

type WorkExperienceAPI struct {
	Position         string   `json:"position"`
	Company          string   `json:"company"`
	Location         string   `json:"location,omitempty"`
	EmploymentPeriod string   `json:"employment_period,omitempty"`
	Description      string   `json:"description,omitempty"`
	SkillsAcquired   []string `json:"skills_acquired,omitempty"`
}

type ProjectAPI struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Link        string `json:"link,omitempty"`
	Period      string `json:"period,omitempty"`
}

// WorkPreferenceAPI has no hybrid member; the backend never stored one.
type WorkPreferenceAPI struct {
	Remote     bool `json:"remote"`
	OnSite     bool `json:"on_site"`
	Relocation bool `json:"relocation"`
}
