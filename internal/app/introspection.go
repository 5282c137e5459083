package app

import (
	"context"
	"log"

	"github.com/cleitonmarx/symbiont/depend"
	"github.com/cleitonmarx/symbiont/introspection"
	"github.com/cleitonmarx/symbiont/introspection/mermaid"
)

// MermaidGraphIntrospector is an implementation of the Introspector interface that generates a Mermaid graph
// representation of the application's configuration and dependencies, and registers it in the dependency container.
type MermaidGraphIntrospector struct {
}

// Introspect generates a Mermaid graph from the provided introspection report and registers it as a named dependency.
func (i MermaidGraphIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	mermaidGraph := mermaid.GenerateIntrospectionGraph(r)
	depend.RegisterNamed(mermaidGraph, "introspection-graph-mermaid")
	return nil
}

// ReportLoggerIntrospector writes the configuration keys read during startup to the application logger.
type ReportLoggerIntrospector struct {
}

// Introspect logs each configuration key and whether its default value was used.
func (i ReportLoggerIntrospector) Introspect(_ context.Context, r introspection.Report) error {
	logger, err := depend.Resolve[*log.Logger]()
	if err != nil {
		logger = log.Default()
	}
	for _, c := range r.Configs {
		logger.Printf("config: key=%s default=%t", c.Key, c.UsedDefault)
	}
	return nil
}
