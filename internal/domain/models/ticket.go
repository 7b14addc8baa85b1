package models

// Ticket is the parsed, sanitized engineering ticket returned to the caller.
type Ticket struct {
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	AcceptanceCriteria []string `json:"acceptance_criteria"`
	FilesToModify      []string `json:"files_to_modify"`
	RawMarkdown        string   `json:"raw_markdown"`
}

// ContextSummary is the flattened view of the pipeline context echoed back
// to the caller alongside the ticket.
type ContextSummary struct {
	IndexResult       IndexResult     `json:"indexing_result"`
	RequestAnalysis   RequestAnalysis `json:"request_analysis"`
	RelevantCodeCount int             `json:"relevant_code_count"`
	Languages         []string        `json:"languages"`
	Frameworks        []string        `json:"frameworks"`
	Patterns          []string        `json:"patterns"`
	BestPractices     []string        `json:"best_practices"`
}

// TicketResult is the single success/failure envelope produced by an
// orchestration run. Callers always receive either a usable ticket or one
// explanatory error string, never a partial structure.
type TicketResult struct {
	Success bool            `json:"success"`
	Ticket  *Ticket         `json:"ticket,omitempty"`
	Context *ContextSummary `json:"context,omitempty"`
	Error   string          `json:"error,omitempty"`
}
