// Package safewrite puts the validation engine in front of every document
// write. Nothing reaches the store without passing through sanitization
// first.
//
// Two layers:
//
//   - PrepareSafeUpdate validates and sanitizes each dotted field path of a
//     partial-document update independently, then merges the survivors into
//     one payload alongside a combined validation result. It performs no I/O
//     and is usable with any store client.
//
//   - Writer binds the engine to a MongoDB collection. Create, Update and
//     Delete each run validation first and refuse the write when the result
//     is not acceptable under the configured policy. Every operation gets a
//     uuid and structured log records.
//
// # Usage
//
//	client, err := safewrite.Connect(ctx, cfg)
//	// ...
//	w := safewrite.NewWriter(
//		client.Database(cfg.Database).Collection("profiles"),
//		safewrite.WithLogger(log),
//	)
//	res, err := w.Update(ctx, "alice", map[string]any{
//		"profile.name": "Alice",
//		"profile.age":  30,
//	})
package safewrite
