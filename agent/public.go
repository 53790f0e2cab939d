package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/etnz/footprint"
	"github.com/etnz/footprint/docs"
	"github.com/etnz/footprint/renderer"
	"google.golang.org/genai"
)

const model = "gemini-2.5-pro"

// creates the facilitator
func newFacilitator(experts ...*Expert) *Expert {
	return &Expert{
		Name:        "Facilitator",
		Description: ``,
		ModelName:   model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skill that you can get from the Tools to ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to understand his carbon footprint and to find realistic
			ways to reduce it. Check his tracked activities first to understand his habits.

			Devise a plan of questions to ask each expert and come up with the best response
			to the user's request. Prefer concrete figures from the footprint ledger over
			generic advice.
		`}}},
		},
		Library: NewLibrary(experts),
	}
}

// NewResearcher creates the expert grounding answers in live information.
func NewResearcher() *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an environmental researcher,
		very well aware of climate science, emission factors, and the carbon cost
		of everyday products and habits.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in environmental science. You can search and find about anything
			related to carbon emissions, climate impact of products, transport, energy and food.
			You leverage Google Search to ground your assertions in a solid truth.
			You can get the latest news too, and you know how to relate them to the user's request.
				`}}},
		},
	}
}

// NewAdvisor creates the expert in charge of the user's footprint ledger.
func NewAdvisor(ledger *footprint.Ledger) *Expert {
	lib := advisorFunctions(ledger)

	return &Expert{
		Name: "Advisor",
		Description: `This is the Advisor. He is in charge of reading the user's carbon footprint ledger.
		He can summarize emissions over a period, compare them to averages, list tracked
		activities and suggest personalized improvement tips.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclaration(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are an advisor in charge of the user's carbon footprint ledger.
				You know how to use the Tools to extract relevant figures about the user's emissions.
				You are part of a team of experts, yours is everything about the user's tracked
				activities. They might ask you questions in approximative language, figure out
				what they meant.

				Use the available tools to get information about the user's footprint
				  - period summaries and full reports
				  - the raw list of tracked activities
				  - improvement tips and sustainable product suggestions
			`}}},
		},
		Library: NewLibrary(lib),
	}
}

// Func implements a simple Function
type Func struct {
	// Declare this function
	Decl *genai.FunctionDeclaration
	// Call this function
	Func func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse
}

func (f *Func) Declaration() *genai.FunctionDeclaration { return f.Decl }
func (f *Func) Call(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
	return f.Func(ctx, id, args)
}

func must[T any](v T, err error) T {
	if err != nil {
		panic(err)
	}
	return v
}

func failure(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"error": err.Error(),
		},
	}
}

func success(id, name, output string) *genai.FunctionResponse {
	return &genai.FunctionResponse{
		ID:   id,
		Name: name,
		Response: map[string]any{
			"output": output,
		},
	}
}

var periodSchema = &genai.Schema{
	Type: genai.TypeString,
	Description: `The period to aggregate over: week, month or year.
	Defaults to week. The window is the period ending today.`,
}

// advisorFunctions builds the Advisor's function library over one ledger.
func advisorFunctions(ledger *footprint.Ledger) []Function {
	summary := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Summary",
			Description: `Summary aggregates the user's emissions over a period ending today:
			the total and the per-category, per-sub-type breakdown.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"period": periodSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted summary of the user's emissions over the period.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			p, err := parsePeriod(args)
			if err != nil {
				return failure(id, "Summary", err)
			}
			s := ledger.NewSummary(p.Range(footprint.Today()))
			return success(id, "Summary", renderer.SummaryMarkdown(s))
		},
	}

	report := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Report",
			Description: `Report builds the full environmental impact report over a period ending
			today: summary, comparison to the average footprint, trend against the previous
			period and personalized tips.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"period": periodSchema,
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted impact report.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			p, err := parsePeriod(args)
			if err != nil {
				return failure(id, "Report", err)
			}
			r := ledger.NewReport(p, footprint.Today())
			return success(id, "Report", renderer.ReportMarkdown(renderer.NewReport(r)))
		},
	}

	activities := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Activities",
			Description: `Activities lists every activity the user has tracked, in
			chronological order, with its date and emissions.`,
			Parameters: &genai.Schema{Type: genai.TypeObject},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted table of all tracked activities.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			var all []footprint.Activity
			for _, a := range ledger.Activities(footprint.AcceptAll) {
				all = append(all, a)
			}
			return success(id, "Activities", renderer.ActivitiesMarkdown(all))
		},
	}

	tips := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Tips",
			Description: `Tips returns improvement tips personalized from the user's
			highest-emission categories over the last month.`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"count": {
						Type:        genai.TypeInteger,
						Description: "Number of tips to return. Defaults to 3.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of improvement tips.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			count := 3
			if n, ok := args["count"].(float64); ok {
				count = int(n)
			}
			var b strings.Builder
			for _, tip := range ledger.Tips(count, footprint.Today()) {
				fmt.Fprintf(&b, "1. %s\n", tip)
			}
			return success(id, "Tips", b.String())
		},
	}

	products := &Func{
		Decl: &genai.FunctionDeclaration{
			Name: "Products",
			Description: `Products recommends sustainable products, from the whole catalog or
			one of its categories (home, kitchen, personal).`,
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"category": {
						Type:        genai.TypeString,
						Description: "Optional catalog category: home, kitchen or personal.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "A markdown-formatted list of sustainable products.",
			},
		},
		Func: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			category, _ := args["category"].(string)
			list, err := footprint.RecommendProducts(category, 5)
			if err != nil {
				return failure(id, "Products", err)
			}
			var b strings.Builder
			for _, p := range list {
				fmt.Fprintf(&b, "- **%s**: %s\n", p.Name, p.Description)
			}
			return success(id, "Products", b.String())
		},
	}

	return []Function{summary, report, activities, tips, products}
}

func parsePeriod(args map[string]any) (footprint.Period, error) {
	iperiod, hasPeriod := args["period"]
	if !hasPeriod {
		return footprint.Weekly, nil
	}
	speriod, ok := iperiod.(string)
	if !ok {
		return footprint.Weekly, fmt.Errorf("argument 'period' is not a string as expected but %T", iperiod)
	}
	p, err := footprint.ParsePeriod(speriod)
	if err != nil {
		return footprint.Weekly, fmt.Errorf("argument 'period' must be a valid period got %q. Below is the doc about periods\n\n%s", speriod, must(docs.GetTopic("periods")))
	}
	return p, nil
}
