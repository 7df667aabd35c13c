/*
Package data provides the Connector interface used by the REST handlers to
reach the service layer, along with a database backed implementation and an
in-memory implementation for tests.

Handlers depend only on the Connector interface, so changes to how records
are stored do not force changes to the API.
*/
package data
