package transform

import (
	"encoding/json"
	"reflect"
	"testing"

	"applicant-portal-service/internal/models"
)

func TestResumeToFormDefensiveShapes(t *testing.T) {
	testCases := []struct {
		name string
		raw  json.RawMessage
	}{
		{"nil payload", nil},
		{"empty payload", json.RawMessage("")},
		{"json null", json.RawMessage("null")},
		{"unparseable string", json.RawMessage(`"just some plain text"`)},
		{"array payload", json.RawMessage(`[1,2,3]`)},
		{"number payload", json.RawMessage(`42`)},
		{"object without personal information", json.RawMessage(`{"skills":["Go"]}`)},
		{"broken json", json.RawMessage(`{"personal_information":`)},
	}

	want := DefaultResumeForm()
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := ResumeToForm(tc.raw)
			if !reflect.DeepEqual(form, want) {
				t.Errorf("expected default form, got %+v", form)
			}
		})
	}
}

func TestResumeToFormJSONEncodedString(t *testing.T) {
	inner := `{"personal_information":{"name":"Ada","surname":"Lovelace","email":"ada@example.com"}}`
	raw, err := json.Marshal(inner)
	if err != nil {
		t.Fatalf("failed to build payload: %v", err)
	}

	form := ResumeToForm(raw)
	if form.PersonalInformation.Name != "Ada" {
		t.Errorf("expected name Ada, got %q", form.PersonalInformation.Name)
	}
	if form.PersonalInformation.Email != "ada@example.com" {
		t.Errorf("expected email mapped, got %q", form.PersonalInformation.Email)
	}
}

func TestResumeToFormEmploymentPeriodSplit(t *testing.T) {
	testCases := []struct {
		name      string
		period    string
		wantStart string
		wantEnd   string
	}{
		{"full range", "2020-01 - 2022-06", "2020-01", "2022-06"},
		{"no delimiter", "2020-01", "2020-01", ""},
		{"extra whitespace", "  2019-03 -  2020-11 ", "2019-03", "2020-11"},
		{"empty", "", "", ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := mustMarshal(t, models.ResumeAPI{
				PersonalInformation: &models.PersonalInformation{Name: "A", Surname: "B", Email: "a@b.c"},
				WorkExperience: []models.WorkExperienceAPI{
					{Position: "Dev", Company: "Acme", EmploymentPeriod: tc.period},
				},
			})

			form := ResumeToForm(raw)
			if len(form.WorkExperience) != 1 {
				t.Fatalf("expected one experience, got %d", len(form.WorkExperience))
			}
			exp := form.WorkExperience[0]
			if exp.StartDate != tc.wantStart {
				t.Errorf("start: expected %q, got %q", tc.wantStart, exp.StartDate)
			}
			if exp.EndDate != tc.wantEnd {
				t.Errorf("end: expected %q, got %q", tc.wantEnd, exp.EndDate)
			}
		})
	}
}

func TestResumeToFormSalaryRange(t *testing.T) {
	testCases := []struct {
		name    string
		joined  string
		wantMin *int
		wantMax *int
	}{
		{"plain range", "50000 - 70000", intPtr(50000), intPtr(70000)},
		{"formatted range", "$50,000 - $70,000", intPtr(50000), intPtr(70000)},
		{"no digits at all", "negotiable - call us", nil, nil},
		{"only minimum parseable", "60000 - TBD", intPtr(60000), nil},
		{"empty", "", nil, nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			raw := mustMarshal(t, models.ResumeAPI{
				PersonalInformation: &models.PersonalInformation{Name: "A", Surname: "B", Email: "a@b.c"},
				SalaryRangeUSD:      tc.joined,
			})

			got := ResumeToForm(raw).SalaryExpectation
			if !intPtrEqual(got.Minimum, tc.wantMin) {
				t.Errorf("minimum: expected %v, got %v", fmtPtr(tc.wantMin), fmtPtr(got.Minimum))
			}
			if !intPtrEqual(got.Maximum, tc.wantMax) {
				t.Errorf("maximum: expected %v, got %v", fmtPtr(tc.wantMax), fmtPtr(got.Maximum))
			}
			if got.Currency != "USD" {
				t.Errorf("currency must be hardcoded to USD inbound, got %q", got.Currency)
			}
		})
	}
}

func TestResumeToFormSkillsUnion(t *testing.T) {
	raw := mustMarshal(t, models.ResumeAPI{
		PersonalInformation: &models.PersonalInformation{Name: "A", Surname: "B", Email: "a@b.c"},
		WorkExperience: []models.WorkExperienceAPI{
			{Position: "Dev", Company: "One", SkillsAcquired: []string{"Go", "Redis"}},
			{Position: "Dev", Company: "Two", SkillsAcquired: []string{"Go", "MongoDB"}},
		},
		Skills: []string{"Redis", "RabbitMQ"},
	})

	form := ResumeToForm(raw)
	want := []string{"Go", "Redis", "MongoDB", "RabbitMQ"}
	if !reflect.DeepEqual(form.Skills, want) {
		t.Errorf("expected deduplicated union %v, got %v", want, form.Skills)
	}
}

func TestResumeToFormHybridAlwaysFalse(t *testing.T) {
	raw := mustMarshal(t, models.ResumeAPI{
		PersonalInformation: &models.PersonalInformation{Name: "A", Surname: "B", Email: "a@b.c"},
		WorkPreference:      &models.WorkPreferenceAPI{Remote: true, OnSite: true, Relocation: true},
	})

	form := ResumeToForm(raw)
	if form.WorkPreference.Hybrid {
		t.Error("hybrid has no backend counterpart and must read false")
	}
	if !form.WorkPreference.Remote || !form.WorkPreference.OnSite || !form.WorkPreference.Relocation {
		t.Errorf("other work preference flags must pass through: %+v", form.WorkPreference)
	}
}

func TestResumeFormToAPIJoins(t *testing.T) {
	form := DefaultResumeForm()
	form.PersonalInformation = models.PersonalInformation{Name: "A", Surname: "B", Email: "a@b.c"}
	form.WorkExperience = []models.WorkExperienceForm{
		{Position: "Dev", Company: "Acme", StartDate: "2020-01", EndDate: "2022-06"},
		{Position: "Lead", Company: "Acme", StartDate: "2022-07", Current: true, EndDate: "should-be-ignored"},
		{Position: "Intern", Company: "Beta", StartDate: "2019-01"},
	}

	api := ResumeFormToAPI(&form)
	if got := api.WorkExperience[0].EmploymentPeriod; got != "2020-01 - 2022-06" {
		t.Errorf("expected joined period, got %q", got)
	}
	if got := api.WorkExperience[1].EmploymentPeriod; got != "2022-07" {
		t.Errorf("current entry must drop its end date, got %q", got)
	}
	if got := api.WorkExperience[2].EmploymentPeriod; got != "2019-01" {
		t.Errorf("missing end date must emit start only, got %q", got)
	}
}

func TestResumeFormToAPISalaryOmittedWithoutBothBounds(t *testing.T) {
	testCases := []struct {
		name string
		min  *int
		max  *int
		want string
	}{
		{"both bounds", intPtr(50000), intPtr(70000), "50000 - 70000"},
		{"minimum only", intPtr(50000), nil, ""},
		{"maximum only", nil, intPtr(70000), ""},
		{"neither", nil, nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			form := DefaultResumeForm()
			form.SalaryExpectation.Minimum = tc.min
			form.SalaryExpectation.Maximum = tc.max

			api := ResumeFormToAPI(&form)
			if api.SalaryRangeUSD != tc.want {
				t.Errorf("expected %q, got %q", tc.want, api.SalaryRangeUSD)
			}
		})
	}
}

func TestResumeFormToAPINilFormReturnsEmptyObject(t *testing.T) {
	api := ResumeFormToAPI(nil)
	if !reflect.DeepEqual(api, models.ResumeAPI{}) {
		t.Errorf("expected empty object on construction failure, got %+v", api)
	}
}

// The round trip is intentionally lossy: period joins normalize formatting
// and aggregated skills are not redistributed to the experiences they came
// from. This pins the accepted behavior rather than "fixing" it.
func TestResumeRoundTripIsLossyByDesign(t *testing.T) {
	raw := mustMarshal(t, models.ResumeAPI{
		PersonalInformation: &models.PersonalInformation{Name: "A", Surname: "B", Email: "a@b.c"},
		WorkExperience: []models.WorkExperienceAPI{
			{Position: "Dev", Company: "Acme", EmploymentPeriod: "2020-01   -   2022-06"},
		},
		SalaryRangeUSD: "$50,000 - $70,000",
	})

	form := ResumeToForm(raw)
	back := ResumeFormToAPI(&form)

	// "2020-01   -   2022-06" splits on the single-space delimiter, so the
	// extra padding collapses: the original text is not recoverable.
	if back.WorkExperience[0].EmploymentPeriod == "2020-01   -   2022-06" {
		t.Error("expected period formatting to be normalized, not preserved")
	}
	if back.SalaryRangeUSD != "50000 - 70000" {
		t.Errorf("expected normalized salary range, got %q", back.SalaryRangeUSD)
	}
}

func mustMarshal(t *testing.T, v any) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal fixture: %v", err)
	}
	return raw
}

func intPtr(v int) *int { return &v }

func intPtrEqual(a, b *int) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func fmtPtr(v *int) any {
	if v == nil {
		return nil
	}
	return *v
}
