package agent

import (
	"context"

	"github.com/etnz/dumpsplit"
	"google.golang.org/genai"
)

// splitFunction exposes the split operation: the agent provides a dump path
// and an output directory, and gets back the list of files written.
type splitFunction struct{}

// NewSplitFunction returns the function-calling surface of the split operation.
func NewSplitFunction() Function { return splitFunction{} }

func (splitFunction) Declaration() *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name: "split_dump",
		Description: "Split a heterogeneous text dump into one CSV or JSON file per detected dataset, " +
			"and compute a capital-gains summary when the dump contains a sales section.",
		Parameters: &genai.Schema{
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"input_path": {
					Type:        genai.TypeString,
					Description: "Path to the dump file to split.",
				},
				"output_dir": {
					Type:        genai.TypeString,
					Description: "Directory receiving one output file per detected section, created if absent.",
				},
			},
			Required: []string{"input_path", "output_dir"},
		},
	}
}

func (f splitFunction) Call(_ context.Context, id string, args map[string]any) *genai.FunctionResponse {
	fresp := &genai.FunctionResponse{
		ID:       id,
		Name:     f.Declaration().Name,
		Response: map[string]any{},
	}

	input, ok := args["input_path"].(string)
	if !ok {
		fresp.Response["error"] = "input_path must be a string"
		return fresp
	}
	output, ok := args["output_dir"].(string)
	if !ok {
		fresp.Response["error"] = "output_dir must be a string"
		return fresp
	}

	report, err := dumpsplit.Run(input, output)
	if err != nil {
		fresp.Response["error"] = err.Error()
		return fresp
	}

	files := make([]string, 0, len(report.Files))
	for _, file := range report.Files {
		files = append(files, file.Path)
	}
	fresp.Response["files"] = files
	fresp.Response["skipped_rows"] = report.SkippedRows
	fresp.Response["gains_computed"] = report.Gains != nil
	return fresp
}
