package types

// Default font selections
const (
	DefaultFontFamily = "font-sans"
	DefaultFontSize   = "text-base"
)

// Option is a display name paired with the value stored in the model.
type Option struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// TemplateInfo describes a selectable template.
type TemplateInfo struct {
	ID   TemplateID `json:"id"`
	Name string     `json:"name"`
}

// FontFamilies lists the selectable font families.
func FontFamilies() []Option {
	return []Option{
		{Name: "Sans Serif", Value: "font-sans"},
		{Name: "Serif", Value: "font-serif"},
		{Name: "Monospace", Value: "font-mono"},
	}
}

// FontSizes lists the selectable base font sizes.
func FontSizes() []Option {
	return []Option{
		{Name: "Small", Value: "text-sm"},
		{Name: "Normal", Value: "text-base"},
		{Name: "Large", Value: "text-lg"},
	}
}

// Templates lists the available templates in display order.
func Templates() []TemplateInfo {
	return []TemplateInfo{
		{ID: TemplateClassic, Name: "Classic Professional"},
		{ID: TemplateModern, Name: "Modern Minimalist"},
		{ID: TemplateCreative, Name: "Creative Impact"},
	}
}

// ColorSchemeKeys is the display order of ColorSchemes.
var ColorSchemeKeys = []string{"default", "charcoal", "ocean", "emerald", "crimson"}

// ColorSchemes returns the built-in color schemes keyed by identifier.
func ColorSchemes() map[string]ColorScheme {
	return map[string]ColorScheme{
		"default":  {Name: "Default Blue", Primary: "text-blue-700", Secondary: "text-gray-700", Accent: "border-blue-500", Background: "bg-white", Text: "text-gray-900"},
		"charcoal": {Name: "Charcoal Grace", Primary: "text-gray-800", Secondary: "text-gray-600", Accent: "border-gray-700", Background: "bg-white", Text: "text-gray-900"},
		"ocean":    {Name: "Ocean Deep", Primary: "text-sky-700", Secondary: "text-slate-600", Accent: "border-sky-500", Background: "bg-white", Text: "text-gray-900"},
		"emerald":  {Name: "Emerald Shine", Primary: "text-emerald-700", Secondary: "text-neutral-600", Accent: "border-emerald-500", Background: "bg-white", Text: "text-gray-900"},
		"crimson":  {Name: "Crimson Bold", Primary: "text-red-700", Secondary: "text-rose-600", Accent: "border-red-500", Background: "bg-white", Text: "text-gray-900"},
	}
}

// InitialCustomizationOptions returns the startup customization.
func InitialCustomizationOptions() CustomizationOptions {
	return CustomizationOptions{
		TemplateID:  TemplateClassic,
		ColorScheme: ColorSchemes()["default"],
		FontOptions: FontOptions{
			FontFamily: DefaultFontFamily,
			FontSize:   DefaultFontSize,
		},
	}
}

// InitialResumeData returns the placeholder resume shown at startup.
// Every call returns a fresh value.
func InitialResumeData() ResumeData {
	return ResumeData{
		PersonalDetails: PersonalDetails{
			FullName:  "Your Name",
			Email:     "youremail@example.com",
			Phone:     "123-456-7890",
			LinkedIn:  "linkedin.com/in/yourprofile",
			Portfolio: "yourportfolio.com",
			Address:   "City, State",
		},
		Summary: "A brief professional summary highlighting your key skills and career goals. Tailor this to the job you are applying for.",
		Experience: []WorkExperience{
			{
				ID: "exp1", JobTitle: "Senior Developer", Company: "Tech Solutions Inc.", Location: "San Francisco, CA",
				StartDate: "Jan 2020", EndDate: "Present",
				Responsibilities: []string{"Led a team of 5 developers.", "Developed and maintained key features.", "Improved application performance by 20%."},
			},
			{
				ID: "exp2", JobTitle: "Software Engineer", Company: "Web Innovations LLC", Location: "Austin, TX",
				StartDate: "Jun 2017", EndDate: "Dec 2019",
				Responsibilities: []string{"Contributed to a large-scale web application.", "Collaborated with cross-functional teams.", "Wrote unit and integration tests."},
			},
		},
		Education: []Education{
			{ID: "edu1", Degree: "M.S. in Computer Science", Institution: "State University", Location: "New York, NY", GraduationDate: "May 2017", Details: "GPA: 3.8/4.0"},
			{ID: "edu2", Degree: "B.S. in Software Engineering", Institution: "Tech College", Location: "Boston, MA", GraduationDate: "May 2015", Details: "Summa Cum Laude"},
		},
		Skills: []Skill{
			{ID: "skill1", Name: "JavaScript (React, Node.js)"},
			{ID: "skill2", Name: "Python (Django, Flask)"},
			{ID: "skill3", Name: "Cloud Computing (AWS, Azure)"},
			{ID: "skill4", Name: "Agile Methodologies"},
		},
		CustomSections: []CustomSection{
			{ID: "custom1", Title: "Projects", Content: "Developed a personal finance tracker app using React Native and Firebase."},
		},
	}
}
