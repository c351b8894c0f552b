package ai

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"

	"golang.org/x/time/rate"
	"google.golang.org/genai"

	"github.com/aravhawk/vetpath/internal/config"
	"github.com/aravhawk/vetpath/internal/domain/profile"
	"github.com/aravhawk/vetpath/internal/usecase"
)

var errNoContent = errors.New("model returned no content")

// GeminiClient implements usecase.AIClient on top of the Gemini API.
// Construction never fails; the underlying client is dialed lazily on
// the first call so a missing key only surfaces through Available().
type GeminiClient struct {
	cfg     config.AIConfig
	limiter *rate.Limiter
	logger  *log.Logger

	mu     sync.Mutex
	client *genai.Client
}

func NewGeminiClient(cfg config.AIConfig, logger *log.Logger) *GeminiClient {
	if logger == nil {
		logger = log.Default()
	}
	return &GeminiClient{
		cfg: cfg,
		// Free-tier friendly: 1 request per second, bursts of 2.
		limiter: rate.NewLimiter(rate.Limit(1), 2),
		logger:  logger,
	}
}

func (c *GeminiClient) Available() bool {
	return strings.TrimSpace(c.cfg.APIKey) != ""
}

func (c *GeminiClient) ParseExperience(ctx context.Context, description string) (profile.ParsedSkills, error) {
	prompt := "Extract structured civilian-relevant skills from this military experience description:\n\n" + description

	raw, err := c.generateJSON(ctx, prompt, parseSystemPrompt, parseSchema)
	if err != nil {
		return profile.ParsedSkills{}, err
	}

	var out parsedSkillsJSON
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return profile.ParsedSkills{}, fmt.Errorf("decode parse response: %w", err)
	}
	return out.toDomain(), nil
}

func (c *GeminiClient) GenerateResume(ctx context.Context, in usecase.ResumeInput) (string, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Write a civilian-style markdown resume for a %s veteran targeting the role of %s", orUnknown(in.Profile.Branch), in.TargetJob)
	if strings.TrimSpace(in.TargetCompany) != "" {
		fmt.Fprintf(&b, " at %s", in.TargetCompany)
	}
	b.WriteString(".\n\n")
	fmt.Fprintf(&b, "Rank: %s\nMOS: %s\nYears of service: %d\n", orUnknown(in.Profile.Rank), orUnknown(in.Profile.MOSCode), in.Profile.YearsOfService)
	if len(in.Parsed.TechnicalSkills) > 0 {
		fmt.Fprintf(&b, "Technical skills: %s\n", strings.Join(in.Parsed.TechnicalSkills, ", "))
	}
	if len(in.Parsed.SoftSkills) > 0 {
		fmt.Fprintf(&b, "Soft skills: %s\n", strings.Join(in.Parsed.SoftSkills, ", "))
	}
	if len(in.Parsed.Certifications) > 0 {
		fmt.Fprintf(&b, "Certifications: %s\n", strings.Join(in.Parsed.Certifications, ", "))
	}
	if in.Parsed.SecurityClearance != "" {
		fmt.Fprintf(&b, "Security clearance: %s\n", in.Parsed.SecurityClearance)
	}
	if strings.TrimSpace(in.Profile.ExperienceDescription) != "" {
		fmt.Fprintf(&b, "\nExperience description:\n%s\n", in.Profile.ExperienceDescription)
	}

	return c.generateText(ctx, b.String(), resumeSystemPrompt)
}

func (c *GeminiClient) DevelopmentPlan(ctx context.Context, occupationTitle string, gaps []string) (usecase.DevelopmentPlan, error) {
	prompt := fmt.Sprintf(
		"A veteran wants to become a %s but is missing these skills: %s.\nProduce a short development plan.",
		occupationTitle, strings.Join(gaps, ", "),
	)

	raw, err := c.generateJSON(ctx, prompt, planSystemPrompt, planSchema)
	if err != nil {
		return usecase.DevelopmentPlan{}, err
	}

	var out struct {
		Summary   string   `json:"summary"`
		Steps     []string `json:"steps"`
		Resources []string `json:"resources"`
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return usecase.DevelopmentPlan{}, fmt.Errorf("decode plan response: %w", err)
	}
	return usecase.DevelopmentPlan{Summary: out.Summary, Steps: out.Steps, Resources: out.Resources}, nil
}

func (c *GeminiClient) generateText(ctx context.Context, prompt, system string) (string, error) {
	resp, err := c.generate(ctx, prompt, &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func (c *GeminiClient) generateJSON(ctx context.Context, prompt, system string, schema *genai.Schema) (string, error) {
	resp, err := c.generate(ctx, prompt, &genai.GenerateContentConfig{
		ResponseMIMEType:  "application/json",
		ResponseSchema:    schema,
		SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
	})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

func (c *GeminiClient) generate(ctx context.Context, prompt string, cfg *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	client, err := c.dial(ctx)
	if err != nil {
		return nil, err
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	resp, err := client.Models.GenerateContent(ctx, c.cfg.Model, genai.Text(prompt), cfg)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return nil, errNoContent
	}
	return resp, nil
}

func (c *GeminiClient) dial(ctx context.Context) (*genai.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.client != nil {
		return c.client, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: c.cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	c.logger.Printf("[AI] Gemini client ready (model=%s)", c.cfg.Model)
	c.client = client
	return c.client, nil
}

type parsedSkillsJSON struct {
	Leadership struct {
		Level   string `json:"level"`
		Scope   string `json:"scope"`
		Context string `json:"context"`
	} `json:"leadership"`
	TechnicalSkills     []string `json:"technical_skills"`
	SoftSkills          []string `json:"soft_skills"`
	TransferableSkills  []string `json:"transferable_skills"`
	YearsExperience     *int     `json:"years_experience"`
	AssetResponsibility string   `json:"asset_responsibility"`
	Certifications      []string `json:"certifications"`
	SecurityClearance   string   `json:"security_clearance"`
}

func (p parsedSkillsJSON) toDomain() profile.ParsedSkills {
	var lead *profile.Leadership
	if p.Leadership.Level != "" || p.Leadership.Scope != "" || p.Leadership.Context != "" {
		lead = &profile.Leadership{
			Level:   p.Leadership.Level,
			Scope:   p.Leadership.Scope,
			Context: p.Leadership.Context,
		}
	}
	return profile.ParsedSkills{
		Leadership:          lead,
		TechnicalSkills:     p.TechnicalSkills,
		SoftSkills:          p.SoftSkills,
		TransferableSkills:  p.TransferableSkills,
		YearsExperience:     p.YearsExperience,
		AssetResponsibility: p.AssetResponsibility,
		Certifications:      p.Certifications,
		SecurityClearance:   p.SecurityClearance,
	}
}

const parseSystemPrompt = `You are an expert military-to-civilian career translator.
Extract skills from the supplied service description and translate them into civilian job-market terms.
Rules:
1. Every skill must be a short, atomic, lowercase phrase (e.g. "equipment maintenance", "team leadership").
2. Only extract what the text states or clearly implies. Never invent skills.
3. leadership.level is one of: "team leader", "supervisor", "manager", "senior manager", or "" when unknown.
4. years_experience is a whole number of years, omitted when the text gives none.
5. security_clearance is the clearance named in the text ("secret", "top secret", ...) or "".`

const resumeSystemPrompt = `You are a professional resume writer who specializes in veterans entering the civilian workforce.
Write a complete one-page resume in markdown. Translate military terminology into civilian language.
Never invent employers, dates, or credentials that were not provided; use bracketed placeholders like [Your Name] for missing personal details.`

const planSystemPrompt = `You are a veteran career coach. Given a target occupation and a list of missing skills,
respond with a concise development plan: a two-sentence summary, 3-5 concrete ordered steps,
and up to 3 resource suggestions (favor GI Bill, VA programs, and low-cost certifications).`

var parseSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"leadership": {
			Type: genai.TypeObject,
			Properties: map[string]*genai.Schema{
				"level":   {Type: genai.TypeString},
				"scope":   {Type: genai.TypeString, Description: "Team size or span of responsibility, verbatim from the text."},
				"context": {Type: genai.TypeString},
			},
		},
		"technical_skills":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"soft_skills":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"transferable_skills":  {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"years_experience":     {Type: genai.TypeInteger},
		"asset_responsibility": {Type: genai.TypeString},
		"certifications":       {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"security_clearance":   {Type: genai.TypeString},
	},
}

var planSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"summary":   {Type: genai.TypeString},
		"steps":     {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		"resources": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
	},
	Required: []string{"summary"},
}

func orUnknown(s string) string {
	if strings.TrimSpace(s) == "" {
		return "unknown"
	}
	return s
}
