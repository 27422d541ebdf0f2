// Package store declares the persistence contracts used by the service layer:
// the UserStore and QuestionStore interfaces, the DBTX handle shared by *sql.DB
// and *sql.Tx, the Transactor that scopes check-then-act sequences, and the
// sentinel errors every implementation reports.
package store
