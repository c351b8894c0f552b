package dto

type ParseRequest struct {
	Experience string `json:"experience"`
}

type ParseResponse struct {
	Skills  ParsedSkills `json:"skills"`
	RawText string       `json:"raw_text"`
}
