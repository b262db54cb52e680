/*
Package service serves numeral-system conversions to the front ends.

It wraps the pure notation engine with an LRU cache of recent conversions,
prometheus metrics, an optional history journal and a bounded concurrent
batch mode. Every call is independent; a Service is safe for concurrent use.
*/
package service
