package domain

type Profile struct {
	Name         string   `json:"name" yaml:"name"`
	SemesterWeek int      `json:"semester_week" yaml:"semester_week"`
	Goals        []string `json:"goals" yaml:"goals"`
	Strengths    []string `json:"strengths" yaml:"strengths"`
}
