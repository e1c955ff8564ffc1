// Package domain holds the error vocabulary shared by the rendering engine,
// the configuration layer and the command line.
//
// The engine never recovers from these conditions. A contract violation
// means a partitioning or wiring bug, so the render is aborted and the
// buffer is discarded instead of being handed to an encoder.
package domain
