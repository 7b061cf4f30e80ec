package models

// JobPreferencesForm is the form-side representation of job-search
// preferences: flat booleans and arrays of primitives, the shape the portal
// hands to clients and accepts back from them.
type JobPreferencesForm struct {
	Remote             bool     `json:"remote"`
	Hybrid             bool     `json:"hybrid"`
	Onsite             bool     `json:"onsite"`
	ExperienceLevels   []string `json:"experience_levels"`
	JobTypes           []string `json:"job_types"`
	PostingDate        string   `json:"posting_date"`
	ApplyOnceAtCompany bool     `json:"apply_once_at_company"`
	Distance           int      `json:"distance"`
	Positions          []string `json:"positions"`
	Locations          []string `json:"locations"`
	CompanyBlacklist   []string `json:"company_blacklist"`
	TitleBlacklist     []string `json:"title_blacklist"`
	LocationBlacklist  []string `json:"location_blacklist"`
}

// ConfigPublic is the wire representation the backend exchanges: experience
// level and job type as every-member-present boolean groups, posting date as
// four mutually exclusive booleans.
type ConfigPublic struct {
	Remote             bool                 `json:"remote"`
	Hybrid             bool                 `json:"hybrid"`
	Onsite             bool                 `json:"onsite"`
	ExperienceLevel    ExperienceLevelFlags `json:"experience_level"`
	JobTypes           JobTypeFlags         `json:"job_types"`
	Date               PostingDateFlags     `json:"date"`
	ApplyOnceAtCompany bool                 `json:"apply_once_at_company"`
	Distance           int                  `json:"distance"`
	Positions          []string             `json:"positions"`
	Locations          []string             `json:"locations"`
	CompanyBlacklist   []string             `json:"company_blacklist"`
	TitleBlacklist     []string             `json:"title_blacklist"`
	LocationBlacklist  []string             `json:"location_blacklist"`
}

type ExperienceLevelFlags struct {
	Internship     bool `json:"internship"`
	Entry          bool `json:"entry"`
	Associate      bool `json:"associate"`
	MidSeniorLevel bool `json:"mid_senior_level"`
	Director       bool `json:"director"`
	Executive      bool `json:"executive"`
}

type JobTypeFlags struct {
	FullTime   bool `json:"full_time"`
	Contract   bool `json:"contract"`
	PartTime   bool `json:"part_time"`
	Temporary  bool `json:"temporary"`
	Internship bool `json:"internship"`
	Other      bool `json:"other"`
	Volunteer  bool `json:"volunteer"`
}

type PostingDateFlags struct {
	AllTime bool `json:"all_time"`
	Month   bool `json:"month"`
	Week    bool `json:"week"`
	Hours   bool `json:"hours"`
}
