package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"gopkg.in/yaml.v3"

	"aiready/internal/config"
	"aiready/internal/model"
)

func main() {
	var file string
	flag.StringVar(&file, "file", "", "YAML file with template definitions (omit to seed the built-in default)")
	flag.Parse()

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer client.Disconnect(ctx)

	coll := client.Database(cfg.MongoDB).Collection("templates")

	templates := []*model.Template{defaultTemplate()}
	if file != "" {
		templates, err = loadTemplates(file)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", file, err)
		}
	}

	for _, t := range templates {
		if err := t.Validate(); err != nil {
			log.Fatalf("Template %q is invalid: %v", t.Name, err)
		}
		if t.ID == "" {
			t.ID = primitive.NewObjectID().Hex()
		}
		if _, err := coll.InsertOne(ctx, t); err != nil {
			log.Fatalf("Failed to insert template %q: %v", t.Name, err)
		}
		fmt.Printf("Seeded template %q (%s)\n", t.Name, t.ID)
	}
}

// YAML shapes mirror the model but keep their own tags so seed files stay
// readable without following Go naming.

type yamlFile struct {
	Templates []yamlTemplate `yaml:"templates"`
}

type yamlTemplate struct {
	Name       string          `yaml:"name"`
	CompanyID  string          `yaml:"company_id"`
	Dimensions []yamlDimension `yaml:"dimensions"`
	Sections   []yamlSection   `yaml:"sections"`
}

type yamlDimension struct {
	ID       string  `yaml:"id"`
	Name     string  `yaml:"name"`
	MaxScore float64 `yaml:"max_score"`
	Weight   float64 `yaml:"weight"`
}

type yamlSection struct {
	ID        string         `yaml:"id"`
	Title     string         `yaml:"title"`
	Questions []yamlQuestion `yaml:"questions"`
}

type yamlQuestion struct {
	ID      string       `yaml:"id"`
	Type    string       `yaml:"type"`
	Prompt  string       `yaml:"prompt"`
	Min     float64      `yaml:"min"`
	Max     float64      `yaml:"max"`
	Options []yamlOption `yaml:"options"`
	Scoring *yamlScoring `yaml:"scoring"`
}

type yamlOption struct {
	Value string   `yaml:"value"`
	Label string   `yaml:"label"`
	Score *float64 `yaml:"score"`
}

type yamlScoring struct {
	Weight       float64            `yaml:"weight"`
	Dimension    string             `yaml:"dimension"`
	ValueMapping map[string]float64 `yaml:"value_mapping"`
}

func loadTemplates(path string) ([]*model.Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f yamlFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	templates := make([]*model.Template, 0, len(f.Templates))
	for _, yt := range f.Templates {
		t := &model.Template{
			Name:      yt.Name,
			CompanyID: yt.CompanyID,
		}
		for _, yd := range yt.Dimensions {
			t.Dimensions = append(t.Dimensions, model.Dimension{
				ID:       yd.ID,
				Name:     yd.Name,
				MaxScore: yd.MaxScore,
				Weight:   yd.Weight,
			})
		}
		for _, ys := range yt.Sections {
			sec := model.Section{ID: ys.ID, Title: ys.Title}
			for _, yq := range ys.Questions {
				q := model.Question{
					ID:     yq.ID,
					Type:   model.QuestionType(yq.Type),
					Prompt: yq.Prompt,
					Min:    yq.Min,
					Max:    yq.Max,
				}
				for _, yo := range yq.Options {
					q.Options = append(q.Options, model.Option{
						Value: yo.Value,
						Label: yo.Label,
						Score: yo.Score,
					})
				}
				if yq.Scoring != nil {
					q.Scoring = &model.Scoring{
						Weight:       yq.Scoring.Weight,
						Dimension:    yq.Scoring.Dimension,
						ValueMapping: yq.Scoring.ValueMapping,
					}
				}
				sec.Questions = append(sec.Questions, q)
			}
			t.Sections = append(t.Sections, sec)
		}
		templates = append(templates, t)
	}
	return templates, nil
}

// defaultTemplate is the stock AI readiness questionnaire
func defaultTemplate() *model.Template {
	scale5 := map[string]float64{"never": 0, "rarely": 1, "sometimes": 2.5, "often": 4, "daily": 5}

	return &model.Template{
		Name: "AI Readiness Assessment",
		Dimensions: []model.Dimension{
			{ID: "prompting", Name: "Prompting Proficiency", MaxScore: 5},
			{ID: "literacy", Name: "AI Literacy", MaxScore: 5},
			{ID: "adoption", Name: "Tool Adoption", MaxScore: 5, Weight: 2},
			{ID: "automation", Name: "Workflow Automation", MaxScore: 5},
			{ID: "data", Name: "Data Practices", MaxScore: 5},
		},
		Sections: []model.Section{
			{
				ID:    model.SectionProfile,
				Title: "About Your Work",
				Questions: []model.Question{
					{
						ID: "department", Type: model.QuestionTypeSelect,
						Prompt: "Which department do you work in?",
						Options: []model.Option{
							{Value: "operations", Label: "Operations"},
							{Value: "finance", Label: "Finance"},
							{Value: "sales", Label: "Sales & Marketing"},
							{Value: "engineering", Label: "Engineering"},
							{Value: "hr", Label: "People & HR"},
						},
					},
					{
						ID: "role_description", Type: model.QuestionTypeText,
						Prompt: "Briefly describe your role and responsibilities.",
					},
					{
						ID: "primary_processes", Type: model.QuestionTypeMultiSelect,
						Prompt: "Which processes take up most of your week?",
						Options: []model.Option{
							{Value: "data_entry", Label: "Data entry"},
							{Value: "report_generation", Label: "Report generation"},
							{Value: "email_management", Label: "Email management"},
							{Value: "scheduling", Label: "Scheduling"},
							{Value: "document_review", Label: "Document review"},
							{Value: "invoice_processing", Label: "Invoice processing"},
							{Value: "customer_support", Label: "Customer support"},
							{Value: "data_analysis", Label: "Data analysis"},
							{Value: "content_creation", Label: "Content creation"},
							{Value: "quality_assurance", Label: "Quality assurance"},
						},
					},
					{
						ID: "technical_background", Type: model.QuestionTypeRadio,
						Prompt: "How would you describe your technical background?",
						Options: []model.Option{
							{Value: "business_user", Label: "Business user"},
							{Value: "intermediate", Label: "Comfortable with technology"},
							{Value: "advanced", Label: "Advanced (scripting, integrations)"},
							{Value: "expert", Label: "Expert (software engineering)"},
						},
						Scoring: &model.Scoring{
							Weight: 1, Dimension: "literacy",
							ValueMapping: map[string]float64{"business_user": 1, "intermediate": 2.5, "advanced": 4, "expert": 5},
						},
					},
				},
			},
			{
				ID:    model.SectionStrategic,
				Title: "Automation Outlook",
				Questions: []model.Question{
					{
						ID: "automation_readiness", Type: model.QuestionTypeRadio,
						Prompt: "How much of your work do you believe could be automated today?",
						Options: []model.Option{
							{Value: "very_little", Label: "Very little"},
							{Value: "some_tasks", Label: "Some tasks"},
							{Value: "significant_portion", Label: "A significant portion"},
							{Value: "majority", Label: "The majority"},
						},
						Scoring: &model.Scoring{
							Weight: 2, Dimension: "automation",
							ValueMapping: map[string]float64{"very_little": 1, "some_tasks": 2, "significant_portion": 4, "majority": 5},
						},
					},
					{
						ID: "current_automation_level", Type: model.QuestionTypeRadio,
						Prompt: "How automated is your work today?",
						Options: []model.Option{
							{Value: "fully_manual", Label: "Fully manual"},
							{Value: "basic_tools", Label: "Basic tools (spreadsheets, macros)"},
							{Value: "some_automation", Label: "Some automated steps"},
							{Value: "highly_automated", Label: "Highly automated"},
						},
						Scoring: &model.Scoring{
							Weight: 1, Dimension: "automation",
							ValueMapping: map[string]float64{"fully_manual": 0, "basic_tools": 2, "some_automation": 3.5, "highly_automated": 5},
						},
					},
					{
						ID: "tools_allowed_at_work", Type: model.QuestionTypeMultiSelect,
						Prompt: "Which AI tools are you allowed to use at work?",
						Options: []model.Option{
							{Value: "chat_assistants", Label: "Chat assistants", Score: ptr(1.5)},
							{Value: "code_assistants", Label: "Code assistants", Score: ptr(1.5)},
							{Value: "automation_platforms", Label: "Automation platforms", Score: ptr(1.5)},
							{Value: "any_tool", Label: "Any tool I choose", Score: ptr(5)},
							{Value: "none_allowed", Label: "None are allowed", Score: ptr(0)},
						},
						Scoring: &model.Scoring{Weight: 1, Dimension: "adoption"},
					},
					{
						ID: "main_bottlenecks", Type: model.QuestionTypeMultiSelect,
						Prompt: "Where does your work slow down the most?",
						Options: []model.Option{
							{Value: "manual_data_entry", Label: "Manual data entry"},
							{Value: "repetitive_tasks", Label: "Repetitive tasks"},
							{Value: "approval_delays", Label: "Waiting for approvals"},
							{Value: "manual_reporting", Label: "Manual reporting"},
							{Value: "information_silos", Label: "Information silos"},
							{Value: "communication_overhead", Label: "Communication overhead"},
							{Value: "context_switching", Label: "Context switching"},
							{Value: "waiting_on_data", Label: "Waiting on data"},
						},
					},
					{
						ID: "time_spent_data_entry", Type: model.QuestionTypeSlider,
						Prompt: "What share of your week goes into data entry? (%)",
						Min:    0, Max: 100,
					},
					{
						ID: "time_spent_report_generation", Type: model.QuestionTypeSlider,
						Prompt: "What share of your week goes into reporting? (%)",
						Min:    0, Max: 100,
					},
				},
			},
			{
				ID:    model.SectionCompetence,
				Title: "AI Skills",
				Questions: []model.Question{
					{
						ID: "prompt_structuring", Type: model.QuestionTypeRadio,
						Prompt: "When asking an AI assistant for help, how do you phrase the request?",
						Options: []model.Option{
							{Value: "single_question", Label: "A single short question"},
							{Value: "some_context", Label: "A question with some context"},
							{Value: "structured_prompt", Label: "Structured prompt with constraints and examples"},
							{Value: "iterative_refinement", Label: "Structured prompt refined over several turns"},
						},
						Scoring: &model.Scoring{
							Weight: 2, Dimension: "prompting",
							ValueMapping: map[string]float64{"single_question": 1, "some_context": 2.5, "structured_prompt": 4, "iterative_refinement": 5},
						},
					},
					{
						ID: "ai_usage_frequency", Type: model.QuestionTypeRadio,
						Prompt: "How often do you use AI tools in your work?",
						Options: []model.Option{
							{Value: "never", Label: "Never"},
							{Value: "rarely", Label: "Rarely"},
							{Value: "sometimes", Label: "A few times a week"},
							{Value: "often", Label: "Most days"},
							{Value: "daily", Label: "Every day"},
						},
						Scoring: &model.Scoring{Weight: 2, Dimension: "adoption", ValueMapping: scale5},
					},
					{
						ID: "confidence_slider", Type: model.QuestionTypeSlider,
						Prompt: "How confident are you explaining what an LLM can and cannot do? (0-10)",
						Min:    0, Max: 10,
						Scoring: &model.Scoring{Weight: 1, Dimension: "literacy"},
					},
					{
						ID: "data_organization", Type: model.QuestionTypeRadio,
						Prompt: "How is the data your team relies on organized?",
						Options: []model.Option{
							{Value: "adhoc", Label: "Ad hoc documents and mailboxes"},
							{Value: "shared_drive", Label: "Shared drives with some structure"},
							{Value: "structured", Label: "Structured systems with clear owners"},
							{Value: "governed", Label: "Governed, versioned, and documented"},
						},
						Scoring: &model.Scoring{
							Weight: 1, Dimension: "data",
							ValueMapping: map[string]float64{"adhoc": 0.5, "shared_drive": 2, "structured": 4, "governed": 5},
						},
					},
					{
						ID: "improvement_ideas", Type: model.QuestionTypeText,
						Prompt: "If you could automate one thing tomorrow, what would it be?",
					},
				},
			},
		},
	}
}

func ptr(v float64) *float64 { return &v }
