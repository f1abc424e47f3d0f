// Package common holds helpers shared by the job services, currently the
// single-instance guard protecting destructive staging operations.
package common
