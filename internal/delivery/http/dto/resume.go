package dto

type ResumeRequest struct {
	Profile       MilitaryProfile `json:"profile"`
	ParsedSkills  ParsedSkills    `json:"parsed_skills"`
	TargetJob     string          `json:"target_job"`
	TargetCompany string          `json:"target_company,omitempty"`
}

type ResumeResponse struct {
	ResumeText string `json:"resume_text"`
	Format     string `json:"format"`
}
