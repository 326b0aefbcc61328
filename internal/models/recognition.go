package models

// RecognitionResponse is the verdict of a single recognition call. It is never persisted.
type RecognitionResponse struct {
	StudentID  *string `json:"studentId"`
	Confidence float64 `json:"confidence"`
	IsLive     bool    `json:"isLive"`
	Name       string  `json:"name,omitempty"`
	Reasoning  string  `json:"reasoning,omitempty"`
}

// MatchedID returns the matched roster id, or "" when nothing matched.
func (r RecognitionResponse) MatchedID() string {
	if r.StudentID == nil {
		return ""
	}
	return *r.StudentID
}
