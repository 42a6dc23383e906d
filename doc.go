// Package qanda is the Composition Root for the qanda application.
//
// It connects the core business logic (Domain Layer) with the
// file-backed stores (Persistence Layer).
//
// qanda is a single-session Q&A knowledge base. Users register and log
// in, record question/answer pairs grouped by subject, browse, edit and
// delete their own entries, search them, and export selected subjects
// to CSV, JSON, PDF or Markdown.
//
// Persistence is deliberately plain: two flat files in a data
// directory, rewritten whole on every mutation with an atomic rename.
//
//   - users.yaml   — username -> {password hash, email, created_at}
//   - qa_data.json — subject  -> ordered array of entries
//
// Usage:
//
//	svc, err := qanda.Open("./data",
//		qanda.WithLogger(logger),
//	)
//
//	err = svc.Register(ctx, "alice", "s3cret!", "alice@example.com")
//	entry, err := svc.AddEntry(ctx, "alice", "Go", "What is a closure?", "...")
package qanda
