// Package mycontainer is the service container the kernel boots bundles into.
//
// A container holds named parameters, service definitions and aliases. Bundles
// populate it during boot; Compile then resolves %parameter% placeholders and checks
// every reference, after which the container is frozen and public services can be
// retrieved with Get. Services are constructed through explicitly registered
// TypeSpecs, never through reflection.
package mycontainer
