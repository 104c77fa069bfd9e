// package models defines the persisted record types for the film catalog
// and the line codec that maps each record to one line of text.
//
// Records are stored one per line with fields joined by a pipe delimiter.
// Free text that may contain the delimiter (film synopses) is written with
// pipes substituted by tildes and restored on decode; a synopsis that
// genuinely contains a tilde is therefore lossy, which is accepted.
package models
