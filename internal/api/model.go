package api

import "pwd-audit/pkg/analyzer"

type analyzeRequest struct {
	Password string `json:"password" binding:"required"`
}

// referenceStrength is the zxcvbn reading returned next to the report so
// callers can calibrate the heuristic against an established estimator.
type referenceStrength struct {
	Score            int     `json:"score"`
	CrackTime        float64 `json:"crack_time"`
	CrackTimeDisplay string  `json:"crack_time_display"`
}

type analyzeResponse struct {
	Report    analyzer.Report    `json:"report"`
	Reference *referenceStrength `json:"reference,omitempty"`
}
