package funnelflow

// Version is the current release of the funnelflow engine.
var Version = "0.1.0"
