/*
Package ports defines the interfaces between the FunnelFlow core and the
outside world (persistence adapters, hosts).

Following Hexagonal Architecture, the core depends only on these
interfaces; concrete adapters (memory, Redis) implement them. The package
also ships a reusable contract test so every adapter is held to the same
behavior.
*/
package ports
