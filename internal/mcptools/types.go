package mcptools

// DateInput selects a diary day.
type DateInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day in YYYY-MM-DD form; defaults to today"`
}

// EntryOutput is the output schema for the get_entry MCP tool.
type EntryOutput struct {
	Date  string `json:"date"`
	Found bool   `json:"found"`
	Text  string `json:"text"`
}

// ListDatesInput is the input schema for the list_dates MCP tool.
type ListDatesInput struct {
	From string `json:"from,omitempty" jsonschema:"Inclusive lower bound, YYYY-MM-DD"`
	To   string `json:"to,omitempty" jsonschema:"Inclusive upper bound, YYYY-MM-DD"`
}

// ListDatesOutput is the output schema for the list_dates MCP tool.
type ListDatesOutput struct {
	Dates []string `json:"dates"`
}

// WriteInput is the input schema for add_entry and update_entry.
type WriteInput struct {
	Date string `json:"date,omitempty" jsonschema:"Day in YYYY-MM-DD form; defaults to today"`
	Text string `json:"text" jsonschema:"Entry text (Markdown)"`
}

// WriteOutput is the output schema for add_entry and update_entry.
type WriteOutput struct {
	Date    string `json:"date"`
	Preview string `json:"preview"`
}

// RemoveInput is the input schema for the remove_entry MCP tool.
type RemoveInput struct {
	Date    string `json:"date,omitempty" jsonschema:"Day in YYYY-MM-DD form; defaults to today"`
	Confirm bool   `json:"confirm" jsonschema:"Must be true for the entry to be removed"`
}

// RemoveOutput is the output schema for the remove_entry MCP tool.
type RemoveOutput struct {
	Date    string `json:"date"`
	Removed bool   `json:"removed"`
}
