// Package funnelflow is the engine behind the FunnelFlow visual funnel
// builder: a zoomable graph canvas of typed steps wired together by
// conditional connections, with debounced persistence, publishing, and
// funnel templates.
//
// The Builder type is the entry point. It owns the persistence backend
// and the shared autosave writer, and hands out per-funnel editing
// sessions:
//
//	engine := funnelflow.New(funnelflow.WithRepository(repo))
//	editor, _ := engine.Edit(ctx, "my-funnel")
//	editor.AddStep(domain.StepVideo)
//
// Persistence is pluggable through ports.FunnelRepository; adapters for
// memory and Redis ship in-tree.
package funnelflow
