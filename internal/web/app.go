// Package web embeds the single-page UI that fetches /api/count and renders
// the per-language line report in the browser.
package web

import (
	_ "embed"
	"html/template"
	"net/http"
	"sync"
)

const (
	stylesPath = "/assets/styles.css"
	scriptPath = "/assets/ui.js"
)

var (
	//go:embed templates/index.html
	pageHTML string
	pageOnce sync.Once
	pageTmpl *template.Template

	//go:embed assets/styles.css
	stylesCSS string

	//go:embed assets/ui.js
	scriptJS string
)

type pageData struct {
	StylesPath string
	ScriptPath string
}

// Register は集計 UI のページとアセットを mux に登録する。/api/count 本体は
// serve コマンド側で用意される。
func Register(mux *http.ServeMux) {
	mux.HandleFunc("/", pageHandler)
	mux.HandleFunc(stylesPath, assetHandler("text/css; charset=utf-8", stylesCSS))
	mux.HandleFunc(scriptPath, assetHandler("application/javascript; charset=utf-8", scriptJS))
}

func pageHandler(w http.ResponseWriter, r *http.Request) {
	tmpl := pageTemplate()
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Referrer-Policy", "no-referrer")
	w.Header().Set("X-Frame-Options", "DENY")
	w.Header().Set("Content-Security-Policy", "default-src 'none'; style-src 'self'; script-src 'self'; img-src 'self'; connect-src 'self'; form-action 'self'; base-uri 'none'")
	if err := tmpl.Execute(w, pageData{StylesPath: stylesPath, ScriptPath: scriptPath}); err != nil {
		http.Error(w, "template rendering failed", http.StatusInternalServerError)
	}
}

// assetHandler serves one embedded static asset with a long-lived cache.
func assetHandler(contentType, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Cache-Control", "public, max-age=86400")
		_, _ = w.Write([]byte(body))
	}
}

func pageTemplate() *template.Template {
	pageOnce.Do(func() {
		pageTmpl = template.Must(template.New("index").Parse(pageHTML))
	})
	return pageTmpl
}
