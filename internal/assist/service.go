// Package assist drafts resume content and advice with the text generator
// and merges drafted content back into the session model.
package assist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
	"github.com/jonathan/resume-builder/internal/session"
	"github.com/jonathan/resume-builder/internal/types"
)

// Defaults used when the user leaves industry or role blank
const (
	DefaultIndustry = "general"
	DefaultRole     = "professional"
)

// Advice titles shown alongside advisory results
const (
	TitleKeywords = "Keyword Suggestions"
	TitleATS      = "ATS Compatibility Advice"
	TitleJobMatch = "Job Description Match Analysis"
)

// GenerateRequest asks for content for one section of the resume.
type GenerateRequest struct {
	Section  Section
	Industry string
	Role     string
}

// Advice is free-form advisory text. It never changes the model.
type Advice struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Service runs generation requests against a session store.
type Service struct {
	client llm.Client
}

// NewService creates a service. A nil client makes every request fail with
// a ConfigurationError, so a server without a credential still starts.
func NewService(client llm.Client) *Service {
	return &Service{client: client}
}

// Generate drafts content for req.Section and merges it into the store.
// The store's busy flag is held for the duration of the call. The model seen
// by the generator includes every mutation applied before dispatch. On any
// error the model is left unchanged.
func (s *Service) Generate(ctx context.Context, store *session.Store, req GenerateRequest) (session.Snapshot, error) {
	if req.Section == nil {
		return session.Snapshot{}, &InputError{Field: "section", Message: "required"}
	}
	release, err := store.TryBegin()
	if err != nil {
		return session.Snapshot{}, err
	}
	defer release()

	snap := store.Snapshot()
	prompt, err := buildGeneratePrompt(snap.Resume, req)
	if err != nil {
		return snap, err
	}

	log.Printf("[assist] generating %s (revision %d)", req.Section.Name(), snap.Revision)
	text, err := s.complete(ctx, prompt, llm.TierStandard)
	if err != nil {
		return store.Snapshot(), err
	}

	// Responses are applied to whatever state is current at completion
	return store.Update(func(data types.ResumeData) (types.ResumeData, error) {
		return req.Section.merge(data, text)
	})
}

// KeywordSuggestions suggests ATS keywords for the current resume.
func (s *Service) KeywordSuggestions(ctx context.Context, store *session.Store, industry, role string) (Advice, error) {
	release, err := store.TryBegin()
	if err != nil {
		return Advice{}, err
	}
	defer release()

	resumeJSON, err := marshalResume(store.Snapshot().Resume)
	if err != nil {
		return Advice{}, err
	}
	prompt, err := prompts.Render(prompts.AssistFile, "keywords", map[string]string{
		"Industry": orDefault(industry, DefaultIndustry),
		"Role":     orDefault(role, DefaultRole),
		"Resume":   resumeJSON,
	})
	if err != nil {
		return Advice{}, err
	}

	log.Printf("[assist] requesting keyword suggestions")
	text, err := s.complete(ctx, prompt, llm.TierLite)
	if err != nil {
		return Advice{}, err
	}
	return Advice{Title: TitleKeywords, Content: text}, nil
}

// ATSAdvice returns general ATS formatting advice for an industry and role.
func (s *Service) ATSAdvice(ctx context.Context, store *session.Store, industry, role string) (Advice, error) {
	release, err := store.TryBegin()
	if err != nil {
		return Advice{}, err
	}
	defer release()

	prompt, err := prompts.Render(prompts.AssistFile, "ats", map[string]string{
		"Industry": orDefault(industry, DefaultIndustry),
		"Role":     orDefault(role, DefaultRole),
	})
	if err != nil {
		return Advice{}, err
	}

	log.Printf("[assist] requesting ATS advice")
	text, err := s.complete(ctx, prompt, llm.TierLite)
	if err != nil {
		return Advice{}, err
	}
	return Advice{Title: TitleATS, Content: text}, nil
}

// JobMatch compares the current resume with a job description.
func (s *Service) JobMatch(ctx context.Context, store *session.Store, jobDescription string) (Advice, error) {
	jobDescription = CleanJobDescription(jobDescription)
	if jobDescription == "" {
		return Advice{}, &InputError{Field: "jobDescription", Message: "Please paste the job description first."}
	}
	release, err := store.TryBegin()
	if err != nil {
		return Advice{}, err
	}
	defer release()

	resumeJSON, err := marshalResume(store.Snapshot().Resume)
	if err != nil {
		return Advice{}, err
	}
	prompt, err := prompts.Render(prompts.AssistFile, "job_match", map[string]string{
		"Resume":         resumeJSON,
		"JobDescription": jobDescription,
	})
	if err != nil {
		return Advice{}, err
	}

	log.Printf("[assist] requesting job match analysis")
	text, err := s.complete(ctx, prompt, llm.TierAdvanced)
	if err != nil {
		return Advice{}, err
	}
	return Advice{Title: TitleJobMatch, Content: text}, nil
}

// complete calls the generator and rejects empty output.
func (s *Service) complete(ctx context.Context, prompt string, tier llm.ModelTier) (string, error) {
	if s.client == nil {
		return "", &llm.ConfigurationError{Message: llm.MissingKeyMessage}
	}
	text, err := s.client.GenerateContent(ctx, prompt, tier)
	if err != nil {
		log.Printf("[assist] generator failed: %v", err)
		return "", err
	}
	text = llm.StripCodeFence(text)
	if text == "" {
		return "", &llm.GenerationError{Message: "No content generated."}
	}
	return text, nil
}

// buildGeneratePrompt assembles the section task and wraps it with the resume context.
func buildGeneratePrompt(data types.ResumeData, req GenerateRequest) (string, error) {
	focus, err := req.Section.task(data)
	if err != nil {
		return "", err
	}

	var contextLine string
	if hint := strings.TrimSpace(req.Section.hint()); hint != "" {
		contextLine = fmt.Sprintf("Context: %s. ", hint)
	}
	task, err := prompts.Render(prompts.AssistFile, "section_task", map[string]string{
		"Section":  req.Section.Name(),
		"Context":  contextLine,
		"Industry": orDefault(req.Industry, DefaultIndustry),
		"Role":     orDefault(req.Role, DefaultRole),
		"FullName": data.PersonalDetails.FullName,
		"Email":    data.PersonalDetails.Email,
	})
	if err != nil {
		return "", err
	}

	resumeJSON, err := marshalResume(data)
	if err != nil {
		return "", err
	}
	return prompts.Render(prompts.AssistFile, "generate_content", map[string]string{
		"Resume": resumeJSON,
		"Task":   task + focus,
	})
}

func marshalResume(data types.ResumeData) (string, error) {
	b, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode resume: %w", err)
	}
	return string(b), nil
}

func orDefault(value, fallback string) string {
	if v := strings.TrimSpace(value); v != "" {
		return v
	}
	return fallback
}
