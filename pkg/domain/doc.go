/*
Package domain contains the core domain models for the FunnelFlow builder.

It defines the fundamental entities of a marketing funnel, such as Steps,
Connections, and the Funnel aggregate that is the unit of persistence.
This package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Step: a single stage in the funnel with a kind, config, order and
    spatial position on the canvas.
  - Connection: a directed edge between two steps (or to the "end"
    terminal), optionally labeled with a branch condition.
  - Funnel: the complete collection of steps and connections plus
    metadata; what the repository loads and saves.
*/
package domain
