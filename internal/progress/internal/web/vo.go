package web

import "encoding/json"

type SubmitReq struct {
	SubmitterId int64   `json:"submitterId"`
	TargetId    int64   `json:"targetId"`
	AttemptId   string  `json:"attemptId"`
	Score       float64 `json:"score"`
	// TimeSpent 用时，秒
	TimeSpent int64           `json:"timeSpent"`
	Answers   json.RawMessage `json:"answers"`
}

type SubmitResp struct {
	Success bool   `json:"success"`
	Id      int64  `json:"id,omitempty"`
	Error   string `json:"error,omitempty"`
	Code    int    `json:"code,omitempty"`
}
