package http

import (
	"embed"
	"html/template"
	"net/http"

	"github.com/cleitonmarx/symbiont-ai-chatgateway/internal/adapters/inbound/http/gen"
	"github.com/cleitonmarx/symbiont/depend"
)

const introspectionGraphName = "introspection-graph-mermaid"

var (
	//go:embed templates/introspect.gohtml
	templateFS    embed.FS
	introspectTpl = template.Must(template.ParseFS(templateFS, "templates/introspect.gohtml"))
)

// Introspect shows the dependency and configuration graph built at startup.
// With ?format=mermaid the raw graph source is returned instead of the HTML page.
func (api GatewayServer) Introspect(w http.ResponseWriter, r *http.Request, params gen.IntrospectParams) {
	graph, err := depend.ResolveNamed[string](introspectionGraphName)
	if err != nil {
		api.Logger.Printf("GatewayServer: introspection graph unavailable: %v", err)
		respondError(w, gen.ErrorResp{Error: gen.Error{Code: gen.SERVICEUNAVAILABLE, Message: "introspection graph not available"}})
		return
	}

	if params.Format != nil && *params.Format == gen.Mermaid {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(graph))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err = introspectTpl.Execute(w, struct {
		Graph string
		Title string
	}{
		Title: "ChatGateway Introspection Graph",
		Graph: graph,
	})
	if err != nil {
		api.Logger.Printf("GatewayServer: failed to render introspection page: %v", err)
	}
}
