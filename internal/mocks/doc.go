// Package mocks provides centralized mock implementations for testing.
//
// Two flavors are available for the stores. MockUserStore and
// MockQuestionStore are in-memory fakes that assign ids and keep rows, for
// scenario tests that chain several operations. TestifyMockUserStore and
// TestifyMockQuestionStore are testify/mock doubles for asserting exact calls
// and injecting errors.
//
// Usage:
//
//	users := mocks.NewMockUserStore()
//	svc := service.NewUserService(users, &mocks.MockTransactor{}, &mocks.MockPasswordHasher{}, logger)
//
// MockTransactor runs the transaction body with a nil *sql.Tx; every mock
// store returns itself from WithTx.
package mocks
