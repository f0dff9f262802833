package domain

// Department groups recruiters and positions; its stats are recomputed from
// the recruiters assigned to it.
type Department struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Head           string `json:"head"`
	RecruiterCount int    `json:"recruiterCount"`
	Performance    int    `json:"performance"`
}
