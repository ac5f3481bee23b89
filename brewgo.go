// Package brewgo is the host-facing API for the Brewin++/Brewin#
// tree-walking interpreter: an Engine that loads an already-parsed
// program tree, a HostEnvironment seam for I/O and terminal errors, YAML
// configuration, and a pluggable backend for the template-specialization
// cache. The evaluator itself -- class/template registries, the object
// model, statement and expression dispatch -- lives in internal/, mirroring
// the separation the teacher draws between its internal executor/resolver
// packages and its root-level, caller-facing Engine.
package brewgo
