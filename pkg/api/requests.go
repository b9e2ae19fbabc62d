package api

// LoginRequest is the HTTP request body for POST /auth/login. Both
// JSON and form encodings are accepted.
type LoginRequest struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// ExecuteQueryRequest is the HTTP request body for POST
// /analytics/execute. Earliest and Latest are Splunk time modifiers;
// Timezone is an IANA zone name used when formatting time columns.
type ExecuteQueryRequest struct {
	Query    string `json:"query"`
	Earliest string `json:"earliest_time,omitempty"`
	Latest   string `json:"latest_time,omitempty"`
	Language string `json:"language,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}
