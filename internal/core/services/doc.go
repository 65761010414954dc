// Package services contains the core application services implementing
// the driving ports. Services depend only on domain types and driven
// ports, never on concrete adapters.
package services
