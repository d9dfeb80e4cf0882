package models

type GroupSummary struct {
	Group  string  `yaml:"group" json:"group"`
	Count  int     `yaml:"count" json:"count"`
	Mean   float64 `yaml:"mean" json:"mean"`
	Median float64 `yaml:"median" json:"median"`
	StdDev float64 `yaml:"std_dev" json:"std_dev"`
	Min    float64 `yaml:"min" json:"min"`
	Max    float64 `yaml:"max" json:"max"`
	P25    float64 `yaml:"p25" json:"p25"`
	P75    float64 `yaml:"p75" json:"p75"`
	P90    float64 `yaml:"p90" json:"p90"`
}

type Summary struct {
	Owner               string         `yaml:"owner" json:"owner"`
	Repo                string         `yaml:"repo" json:"repo"`
	Login               string         `yaml:"login" json:"login"`
	Metric              string         `yaml:"metric" json:"metric"`
	AIPullRequests      int            `yaml:"ai_pull_requests" json:"ai_pull_requests"`
	AIReviews           int            `yaml:"ai_reviews" json:"ai_reviews"`
	NonAIPullRequests   int            `yaml:"non_ai_pull_requests" json:"non_ai_pull_requests"`
	InstructionsPresent bool           `yaml:"instructions_present" json:"instructions_present"`
	Groups              []GroupSummary `yaml:"groups" json:"groups"`
}
