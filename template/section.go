package template

import (
	"bytes"
	htmltemplate "html/template"

	"github.com/fwojciec/pagekit"
)

// sectionTemplates holds one definition per section type. html/template
// escapes every interpolated value for its context, so user text can never
// inject markup and unsafe URL schemes in href or src are neutralised.
var sectionTemplates = htmltemplate.Must(htmltemplate.New("sections").Parse(`
{{- define "hero" -}}
<section class="hero" id="{{.ID}}">
{{- with .Data.BackgroundImage}}<img class="hero-bg" src="{{.}}" alt="">{{end -}}
<div class="hero-inner"><h1>{{.Data.Heading}}</h1>
{{- with .Data.Subheading}}<p class="hero-sub">{{.}}</p>{{end -}}
<a class="btn" href="{{.Data.CTALink}}">{{.Data.CTAText}}</a></div></section>
{{- end -}}

{{- define "features" -}}
<section class="features" id="{{.ID}}"><h2>{{.Name}}</h2><div class="feature-grid">
{{- range .Data.Items -}}
<div class="feature-card">
{{- with .IconImage}}<img src="{{.}}" alt="">{{end -}}
<h3>{{.Title}}</h3><p>{{.Body}}</p></div>
{{- end -}}
</div></section>
{{- end -}}

{{- define "testimonials" -}}
<section class="testimonials" id="{{.ID}}"><h2>{{.Name}}</h2><div class="testimonial-list">
{{- range .Data.Items -}}
<blockquote class="testimonial"><p>{{.Quote}}</p><cite>{{.Name}}</cite></blockquote>
{{- end -}}
</div></section>
{{- end -}}

{{- define "faq" -}}
<section class="faq" id="{{.ID}}"><h2>{{.Name}}</h2><dl class="faq-list">
{{- range .Data.Items -}}
<dt>{{.Q}}</dt><dd>{{.A}}</dd>
{{- end -}}
</dl></section>
{{- end -}}

{{- define "footer" -}}
<footer class="site-footer" id="{{.ID}}"><p class="company">{{.Data.CompanyName}}</p><nav><ul>
{{- range .Data.Links -}}
<li><a href="{{.URL}}">{{.Label}}</a></li>
{{- end -}}
</ul></nav><p class="copyright">&copy; {{.Data.CompanyName}}</p></footer>
{{- end -}}
`))

// sectionView is what each section template receives.
type sectionView[T pagekit.SectionData] struct {
	ID   string
	Name string
	Data T
}

// RenderSection renders one section as an HTML fragment. Invisible sections
// render as the empty string.
func RenderSection(s pagekit.Section) (string, error) {
	if !s.Visible {
		return "", nil
	}

	var name string
	var view any
	switch data := s.Data.(type) {
	case *pagekit.HeroData:
		name, view = "hero", sectionView[*pagekit.HeroData]{s.ID, s.Name, data}
	case *pagekit.FeaturesData:
		name, view = "features", sectionView[*pagekit.FeaturesData]{s.ID, s.Name, data}
	case *pagekit.TestimonialsData:
		name, view = "testimonials", sectionView[*pagekit.TestimonialsData]{s.ID, s.Name, data}
	case *pagekit.FAQData:
		name, view = "faq", sectionView[*pagekit.FAQData]{s.ID, s.Name, data}
	case *pagekit.FooterData:
		name, view = "footer", sectionView[*pagekit.FooterData]{s.ID, s.Name, data}
	default:
		return "", pagekit.Errorf(pagekit.EINVALID, "cannot render section %q of type %q", s.ID, s.Type())
	}

	var buf bytes.Buffer
	if err := sectionTemplates.ExecuteTemplate(&buf, name, view); err != nil {
		return "", err
	}
	return buf.String(), nil
}
