// Package domain holds the recommendation requester's model: the schema
// bundle resolved for a historical job and the optimization exchange built
// from it.
package domain

// QueryDetailsRequest identifies the historical job whose query text and
// referenced schemas should be resolved.
type QueryDetailsRequest struct {
	JobID    string `json:"job_id" validate:"required"`
	Location string `json:"location"`
	Project  string `json:"project"`
}

// QueryDetails bundles a job's query text with the DDL of every table the
// job referenced. Warnings name the tables whose schemas could not be read.
type QueryDetails struct {
	Query    string   `json:"query"`
	DDL      string   `json:"ddl"`
	Warnings []string `json:"warnings,omitempty"`
}

// OptimizeRequest carries the query text and schema context submitted for
// recommendations.
type OptimizeRequest struct {
	Query string `json:"query" validate:"required"`
	DDL   string `json:"ddl" validate:"required"`
}

// Recommendation is the model's markdown advice, passed through verbatim.
type Recommendation struct {
	Recommendation string `json:"recommendations"`
}
