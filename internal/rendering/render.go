package rendering

import (
	"embed"
	"fmt"
	"html/template"
	"strings"
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

//go:embed templates/*.html
var templateFiles embed.FS

// PreviewContainerID is the id of the element wrapping every rendered resume.
const PreviewContainerID = "resume-preview-content"

// Renderer maps a resume and its customization to a self-contained markup fragment.
type Renderer interface {
	// Template returns the layout this renderer implements
	Template() types.TemplateID
	// Render produces the markup. It must not modify data or opts.
	Render(data types.ResumeData, opts types.CustomizationOptions) (template.HTML, error)
}

// htmlRenderer renders one embedded layout template
type htmlRenderer struct {
	id   types.TemplateID
	once sync.Once
	tmpl *template.Template
	err  error
}

var renderers = map[types.TemplateID]*htmlRenderer{
	types.TemplateClassic:  {id: types.TemplateClassic},
	types.TemplateModern:   {id: types.TemplateModern},
	types.TemplateCreative: {id: types.TemplateCreative},
}

// For returns the renderer for id. Unknown templates fall back to classic.
func For(id types.TemplateID) Renderer {
	if r, ok := renderers[id]; ok {
		return r
	}
	return renderers[types.TemplateClassic]
}

// Render renders data with the template selected in opts.
func Render(data types.ResumeData, opts types.CustomizationOptions) (template.HTML, error) {
	return For(opts.TemplateID).Render(data, opts)
}

func (r *htmlRenderer) Template() types.TemplateID {
	return r.id
}

func (r *htmlRenderer) Render(data types.ResumeData, opts types.CustomizationOptions) (template.HTML, error) {
	tmpl, err := r.load()
	if err != nil {
		return "", err
	}

	v := newView(data, opts)
	v.Layout = r.id

	var sb strings.Builder
	if err := tmpl.ExecuteTemplate(&sb, "preview", v); err != nil {
		return "", &TemplateError{
			Template: string(r.id),
			Message:  "failed to execute template",
			Cause:    err,
		}
	}

	//nolint:gosec // output of html/template is already escaped
	return template.HTML(sb.String()), nil
}

// load parses the shared base layout together with the template body once
func (r *htmlRenderer) load() (*template.Template, error) {
	r.once.Do(func() {
		r.tmpl, r.err = template.New(string(r.id)).Funcs(template.FuncMap{
			"dict": dict,
		}).ParseFS(templateFiles,
			"templates/base.html",
			fmt.Sprintf("templates/%s.html", r.id),
		)
		if r.err != nil {
			r.err = &TemplateError{
				Template: string(r.id),
				Message:  "failed to parse template",
				Cause:    r.err,
			}
		}
	})
	return r.tmpl, r.err
}

// view is the data passed to the layout templates
type view struct {
	types.ResumeData
	ContainerID string
	Layout      types.TemplateID
	Scheme      types.ColorScheme
	Font        types.FontOptions

	// Headline is shown under the name by layouts with a header band
	Headline string
	// CustomSections holds only the sections with both a title and content
	CustomSections []types.CustomSection

	PrimaryClass string
	PrimaryBg    string
	AccentBorder string
	AccentBg     string
	AccentBar    string
}

func newView(data types.ResumeData, opts types.CustomizationOptions) view {
	scheme := opts.ColorScheme

	v := view{
		ResumeData:   data,
		ContainerID:  PreviewContainerID,
		Scheme:       scheme,
		Font:         opts.FontOptions,
		Headline:     "Professional Profile",
		PrimaryClass: withPrefix(scheme.Primary, "text-"),
		AccentBorder: withPrefix(scheme.Accent, "border-"),
	}
	if len(data.Experience) > 0 && data.Experience[0].JobTitle != "" {
		v.Headline = data.Experience[0].JobTitle
	}

	v.PrimaryBg = strings.Replace(v.PrimaryClass, "text-", "bg-", 1)
	if strings.HasPrefix(scheme.Accent, "border-") {
		v.AccentBg = strings.Replace(strings.Replace(scheme.Accent, "border-", "bg-", 1), "-500", "-100", 1)
	} else {
		v.AccentBg = "bg-" + scheme.Accent + "-100"
	}
	v.AccentBar = strings.Replace(v.AccentBg, "-100", "-500", 1)

	for _, section := range data.CustomSections {
		if section.Title != "" && section.Content != "" {
			v.CustomSections = append(v.CustomSections, section)
		}
	}
	return v
}

// dict builds a map from alternating keys and values so templates can pass
// several values to a sub-template.
func dict(pairs ...any) (map[string]any, error) {
	if len(pairs)%2 != 0 {
		return nil, fmt.Errorf("dict requires an even number of arguments, got %d", len(pairs))
	}
	m := make(map[string]any, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			return nil, fmt.Errorf("dict key %d is %T, not string", i, pairs[i])
		}
		m[key] = pairs[i+1]
	}
	return m, nil
}

func withPrefix(class, prefix string) string {
	if class == "" || strings.HasPrefix(class, prefix) {
		return class
	}
	return prefix + class
}
