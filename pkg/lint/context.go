package lint

import (
	"context"

	"github.com/yaklabco/atslint/pkg/document"
)

// RuleContext provides everything a rule needs to scan one document.
//
// RuleContext stores context.Context as a field because it is a short-lived
// parameter object created per rule invocation.
type RuleContext struct {
	// Ctx is the context for cancellation.
	Ctx context.Context

	// Document is the loaded document. Rules treat it as read-only.
	Document *document.Document

	// Registry provides access to the rule registry for name lookups.
	Registry *Registry
}

// NewRuleContext creates a RuleContext for the given document.
func NewRuleContext(ctx context.Context, doc *document.Document) *RuleContext {
	return &RuleContext{
		Ctx:      ctx,
		Document: doc,
	}
}

// Lines returns the document lines.
func (rc *RuleContext) Lines() []string {
	if rc.Document == nil {
		return nil
	}
	return rc.Document.Lines
}

// Cancelled returns true if the context has been cancelled.
func (rc *RuleContext) Cancelled() bool {
	select {
	case <-rc.Ctx.Done():
		return true
	default:
		return false
	}
}
