package document

// Profile is the structured data stored in the user's Profile (JSONB) column.
// It aggregates the form fields and the interview answers the frontend
// collects.
type Profile struct {
	Identity    Identity          `json:"identity"`
	Target      Target            `json:"target"`
	Education   []EducationEntry  `json:"education"`
	Experiences []ExperienceEntry `json:"experiences"`
	Skills      []string          `json:"skills"`
	Languages   []string          `json:"languages"`
	Interview   []InterviewAnswer `json:"interview"`
}

// Target describes the job the documents are tailored to.
type Target struct {
	Company        string `json:"company"`
	Sector         string `json:"sector"`
	Location       string `json:"location"`
	Position       string `json:"position"`
	ExperienceType string `json:"experience_type"`
	StartMonth     string `json:"start_month"`
	StartYear      string `json:"start_year"`
	Description    string `json:"description"`
}

// EducationEntry is one degree or training item.
type EducationEntry struct {
	Degree     string   `json:"degree"`
	School     string   `json:"school"`
	Period     string   `json:"period"`
	Highlights []string `json:"highlights"`
}

// ExperienceEntry is one job or internship item.
type ExperienceEntry struct {
	Role    string   `json:"role"`
	Company string   `json:"company"`
	Period  string   `json:"period"`
	Bullets []string `json:"bullets"`
}

// InterviewAnswer is one answer from the guided interview flow.
type InterviewAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}
