package cmd

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"github.com/medkb/sympta-cli/internal/config"
	"github.com/medkb/sympta-cli/internal/dataset"
	"github.com/medkb/sympta-cli/internal/translate"
	"github.com/spf13/cobra"
)

var (
	flagServeData   string
	flagServeListen string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the browser form UI",
	Long: `Start a local web server with a symptom lookup form.

Routes:
  GET  /        the form
  POST /ask     run a query
  POST /reload  reload the CSV and swap the table atomically`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeData, "data", "", "Path to the symptom CSV (default: data_path from sympta.yaml)")
	serveCmd.Flags().StringVar(&flagServeListen, "listen", "", "Listen address (default: listen from sympta.yaml)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := effectiveConfig(flagServeData)
	if err != nil {
		return err
	}
	if flagServeListen != "" {
		cfg.Listen = flagServeListen
	}

	// Serve mode tolerates a missing table so the form can report it;
	// reload picks the data up once the file appears.
	records, err := dataset.Load(cfg.DataPath)
	if err != nil {
		printWarn("", fmt.Sprintf("no symptom data loaded: %v", err))
		records = nil
	}

	s := &webServer{
		cfg:   cfg,
		table: dataset.NewTable(records),
		tr:    wireTranslator(cfg),
	}

	srv := &http.Server{
		Addr:              cfg.Listen,
		Handler:           s.routes(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	printInfo("", "listening on http://"+cfg.Listen)
	return srv.ListenAndServe()
}

type webServer struct {
	cfg   *config.Config
	table *dataset.Table
	tr    translate.Translator
}

func (s *webServer) routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/ask", s.handleAsk)
	mux.HandleFunc("/reload", s.handleReload)
	return mux
}

type pageData struct {
	Query       string
	Lang        string
	Count       int
	Asked       bool
	Matched     bool
	Score       float64
	Answer      string
	Suggestions []string
}

func (s *webServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, pageData{Lang: s.cfg.Language, Count: s.table.Len()})
}

func (s *webServer) handleAsk(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	query := strings.TrimSpace(r.FormValue("q"))
	lang := strings.TrimSpace(r.FormValue("lang"))
	if lang == "" {
		lang = s.cfg.Language
	}

	ctx, cancel := context.WithTimeout(r.Context(), time.Minute)
	defer cancel()
	ans := askPipeline(ctx, s.tr, s.table.Records(), query, lang, s.cfg.MinScore)

	s.render(w, pageData{
		Query:       query,
		Lang:        lang,
		Count:       s.table.Len(),
		Asked:       true,
		Matched:     ans.Record != nil,
		Score:       ans.Score,
		Answer:      ans.Text,
		Suggestions: ans.Suggestions,
	})
}

func (s *webServer) handleReload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	records, err := dataset.Load(s.cfg.DataPath)
	if err != nil {
		http.Error(w, fmt.Sprintf("reload failed: %v", err), http.StatusInternalServerError)
		return
	}
	s.table.Replace(records)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *webServer) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTmpl.Execute(w, data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html>
<head><meta charset="utf-8"><title>Sympta</title>
<style>
 body { font-family: sans-serif; max-width: 42rem; margin: 2rem auto; }
 textarea { width: 100%; height: 4rem; }
 pre { background: #f4f4f4; padding: 1rem; white-space: pre-wrap; }
 .muted { color: #777; }
</style>
</head>
<body>
<h1>Sympta</h1>
<p class="muted">{{.Count}} records loaded</p>
<form method="post" action="/ask">
  <textarea name="q" placeholder="Describe your symptom">{{.Query}}</textarea>
  <p><label>Language: <input name="lang" value="{{.Lang}}" size="4"></label>
  <button type="submit">Ask</button></p>
</form>
{{if .Asked}}
  <pre>{{.Answer}}</pre>
  <p class="muted">score: {{printf "%.3f" .Score}}</p>
  {{if .Suggestions}}<p>Did you mean:
    {{range .Suggestions}}<em>{{.}}</em> {{end}}</p>{{end}}
{{end}}
<form method="post" action="/reload"><button type="submit">Reload data</button></form>
</body>
</html>
`))
