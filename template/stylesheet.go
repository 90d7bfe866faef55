package template

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// stylesheet is shared by every generated page. It depends on nothing but
// the class names emitted by the section templates.
const stylesheet = `*,*::before,*::after{box-sizing:border-box}
body{margin:0;font-family:"Hiragino Sans","Noto Sans JP",system-ui,sans-serif;line-height:1.7;color:#1f2933;background:#fff}
img{max-width:100%;height:auto}
section{padding:64px 24px}
section>h2{margin:0 auto 32px;max-width:960px;font-size:1.75rem;text-align:center}
.hero{position:relative;overflow:hidden;padding:96px 24px;text-align:center;background:#f4f7fb}
.hero-bg{position:absolute;inset:0;width:100%;height:100%;object-fit:cover;opacity:.25;z-index:0}
.hero-inner{position:relative;z-index:1;max-width:960px;margin:0 auto}
.hero h1{margin:0 0 16px;font-size:2.5rem;line-height:1.3}
.hero-sub{margin:0 0 32px;font-size:1.125rem;color:#52606d}
.btn{display:inline-block;padding:14px 32px;border-radius:999px;background:#2563eb;color:#fff;font-weight:700;text-decoration:none}
.btn:hover{background:#1d4ed8}
.feature-grid{display:grid;grid-template-columns:repeat(auto-fit,minmax(240px,1fr));gap:24px;max-width:960px;margin:0 auto}
.feature-card{padding:24px;border:1px solid #e4e7eb;border-radius:12px}
.feature-card img{width:48px;height:48px;margin-bottom:12px}
.feature-card h3{margin:0 0 8px;font-size:1.125rem}
.feature-card p{margin:0;color:#52606d}
.testimonials{background:#f9fafb}
.testimonial-list{display:grid;grid-template-columns:repeat(auto-fit,minmax(280px,1fr));gap:24px;max-width:960px;margin:0 auto}
.testimonial{margin:0;padding:24px;border-radius:12px;background:#fff;box-shadow:0 1px 3px rgba(0,0,0,.08)}
.testimonial p{margin:0 0 12px}
.testimonial cite{font-style:normal;font-weight:700;color:#52606d}
.faq-list{max-width:760px;margin:0 auto}
.faq-list dt{margin-top:24px;font-weight:700}
.faq-list dt::before{content:"Q. ";color:#2563eb}
.faq-list dd{margin:8px 0 0;color:#52606d}
.site-footer{padding:40px 24px;background:#1f2933;color:#cbd2d9;text-align:center}
.site-footer .company{margin:0 0 16px;font-weight:700;color:#fff}
.site-footer ul{display:flex;flex-wrap:wrap;justify-content:center;gap:8px 24px;margin:0 0 16px;padding:0;list-style:none}
.site-footer a{color:#cbd2d9;text-decoration:none}
.site-footer a:hover{color:#fff}
.copyright{margin:0;font-size:.875rem}
@media (max-width:600px){.hero h1{font-size:1.875rem}section{padding:48px 16px}}
`

// StylesheetName is the file name generated documents link to.
const StylesheetName = "style.css"

var stylesheetVersion = strconv.FormatUint(xxhash.Sum64String(stylesheet), 16)

// Stylesheet returns the CSS shared by every generated document.
func Stylesheet() string {
	return stylesheet
}

// StylesheetVersion returns a content hash of the stylesheet, used to bust
// caches when the CSS changes.
func StylesheetVersion() string {
	return stylesheetVersion
}

// StylesheetHref returns the versioned link generated documents use.
func StylesheetHref() string {
	return StylesheetName + "?v=" + stylesheetVersion
}
