// Package common holds the error taxonomy shared between the cl package
// and its public façade (pkg/core), so both report failures against the
// same three sentinels.
//
// This is an internal package not intended for direct use by applications.
package common
